package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"forumhub/internal/forum"
	"forumhub/internal/model"
)

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	dimColor    = color.New(color.Faint)
	unreadColor = color.New(color.FgYellow, color.Bold)
)

var rarityColors = map[model.BadgeRarity]*color.Color{
	model.RarityCommon:    color.New(color.FgWhite),
	model.RarityRare:      color.New(color.FgBlue),
	model.RarityEpic:      color.New(color.FgMagenta),
	model.RarityLegendary: color.New(color.FgYellow, color.Bold),
}

func printPostLine(p model.Post) {
	titleColor.Printf("#%s  %s\n", p.ID, p.Title)
	dimColor.Printf("    %s · %s · %d votes · %d comments · %s", p.Author.Name, p.Category, p.Upvotes, p.CommentsCount, p.Timestamp)
	if len(p.Tags) > 0 {
		dimColor.Printf(" · #%s", strings.Join(p.Tags, " #"))
	}
	fmt.Println()
}

func printPost(p model.Post, bookmarked bool) {
	printPostLine(p)
	if bookmarked {
		fmt.Println("    [bookmarked]")
	}
	fmt.Printf("\n%s\n\n", p.Body)
	if len(p.Comments) == 0 {
		fmt.Println("No comments yet.")
		return
	}
	printComments(p.Comments, 0)
}

func printComments(comments []model.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range comments {
		fmt.Printf("%s%s ", indent, titleColor.Sprint(c.Author.Name))
		dimColor.Printf("(%s, %s)\n", c.ID, c.Timestamp)
		fmt.Printf("%s  %s\n", indent, c.Body)
		printComments(c.Replies, depth+1)
	}
}

func printNotifications(list []model.Notification) {
	if len(list) == 0 {
		fmt.Println("No notifications.")
		return
	}
	for _, n := range list {
		line := fmt.Sprintf("%-6s %-8s %s: %s (%s)", n.ID, n.Type, n.Title, n.Message, n.Timestamp)
		if n.IsRead {
			dimColor.Println(line)
		} else {
			unreadColor.Println("* " + line)
		}
	}
}

func printMember(u model.User) {
	fmt.Printf("%-16s %-20s %-14s %6d rep  joined %s\n", "@"+u.Username, u.Name, u.Role, u.Reputation, u.JoinedAt)
}

func printBadge(b model.Badge) {
	c, ok := rarityColors[b.Rarity]
	if !ok {
		c = color.New(color.Reset)
	}
	status := "  "
	if b.IsEarned {
		status = "✓ "
	}
	c.Printf("%s%-18s %-10s %-10s", status, b.Name, b.Category, b.Rarity)
	if b.Progress != nil && !b.IsEarned {
		fmt.Printf(" %d/%d", b.Progress.Current, b.Progress.Target)
	}
	fmt.Printf("  %s\n", b.Description)
}

func printSummary(s forum.BadgeSummary) {
	fmt.Printf("\n%d of %d earned (%d%%)\n", s.Earned, s.Total, s.Percentage)
}
