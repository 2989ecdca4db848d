package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forumhub/internal/app"
	"forumhub/internal/forum"
	"forumhub/internal/model"
	"forumhub/internal/tagging"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage notifications",
}

var notifyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: withApp("notify list", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		list, err := a.Notifications().ListNotifications(cmd.Context())
		if err != nil {
			return err
		}
		printNotifications(list)
		return nil
	}),
}

var notifyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a notification",
	RunE: withApp("notify add", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		flags := cmd.Flags()
		typ, _ := flags.GetString("type")
		title, _ := flags.GetString("title")
		message, _ := flags.GetString("message")
		link, _ := flags.GetString("link")
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("--title is required")
		}

		n, err := a.Notifications().AddNotification(cmd.Context(), forum.NewNotification{
			Type:    model.NotificationType(typ),
			Title:   title,
			Message: message,
			Link:    link,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added notification %s\n", n.ID)
		return nil
	}),
}

var notifyReadCmd = &cobra.Command{
	Use:   "read NOTIFICATION_ID",
	Short: "Mark a notification read",
	Args:  cobra.ExactArgs(1),
	RunE: withApp("notify read", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		list, err := a.Notifications().MarkAsRead(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printNotifications(list)
		return nil
	}),
}

var notifyReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification read",
	RunE: withApp("notify read-all", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		list, err := a.Notifications().MarkAllAsRead(cmd.Context())
		if err != nil {
			return err
		}
		printNotifications(list)
		return nil
	}),
}

var notifyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notifications",
	RunE: withApp("notify clear", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		if _, err := a.Notifications().ClearAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Notifications cleared.")
		return nil
	}),
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Browse the member directory",
	RunE: withApp("members", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()
		search, _ := flags.GetString("query")
		role, _ := flags.GetString("role")
		sort, _ := flags.GetString("sort")

		members, err := a.Users().ListMembers(ctx, forum.MemberQuery{Search: search, Role: role, Sort: forum.MemberSort(sort)})
		if err != nil {
			return err
		}
		top, err := a.Users().TopContributors(ctx)
		if err != nil {
			return err
		}

		if len(members) == 0 {
			fmt.Println("No members found.")
		}
		for _, u := range members {
			printMember(u)
		}
		dimColor.Printf("\n%d top contributors\n", top)
		return nil
	}),
}

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges",
	RunE: withApp("badges", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		category, _ := cmd.Flags().GetString("category")

		badges, err := a.Badges().ListBadges(ctx, category)
		if err != nil {
			return err
		}
		summary, err := a.Badges().Summary(ctx)
		if err != nil {
			return err
		}
		for _, b := range badges {
			printBadge(b)
		}
		printSummary(summary)
		return nil
	}),
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show or update your profile",
}

var meShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: withApp("me show", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		u, err := a.Users().CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		titleColor.Printf("%s (@%s)\n", u.Name, u.Username)
		fmt.Printf("Role:       %s\n", u.Role)
		fmt.Printf("Reputation: %d\n", u.Reputation)
		fmt.Printf("Joined:     %s\n", u.JoinedAt)
		fmt.Printf("Posts:      %d\n", u.PostsCount)
		fmt.Printf("Solutions:  %d\n", u.SolutionsCount)
		return nil
	}),
}

var meUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	RunE: withApp("me update", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		flags := cmd.Flags()
		var upd forum.UserUpdate
		upd.Name, _ = flags.GetString("name")
		upd.Username, _ = flags.GetString("username")
		upd.Role, _ = flags.GetString("role")
		upd.Avatar, _ = flags.GetString("avatar")

		u, err := a.Users().UpdateCurrentUser(cmd.Context(), upd)
		if err != nil {
			return err
		}
		fmt.Printf("Updated profile for @%s\n", u.Username)
		return nil
	}),
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Get or change the colour theme",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current theme",
	RunE: withApp("theme get", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		t, err := a.Theme().Get(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(t)
		return nil
	}),
}

var themeSetCmd = &cobra.Command{
	Use:       "set light|dark",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark)},
	RunE: withApp("theme set", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		return a.Theme().Set(cmd.Context(), model.Theme(args[0]))
	}),
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: withApp("theme toggle", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		t, err := a.Theme().Toggle(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(t)
		return nil
	}),
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Tag helpers",
}

var tagsSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the AI service for tags",
	RunE: withApp("tags suggest", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		content, _ := cmd.Flags().GetString("content")
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("--title is required")
		}

		tags := a.Tagger().SuggestTags(cmd.Context(), title, content)
		if len(tags) == 0 {
			fmt.Println("No suggestions.")
			return nil
		}
		fmt.Println(strings.Join(tagging.MergeTags(nil, tags), ", "))
		return nil
	}),
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Ask the AI service about a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp("search", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		res := a.Tagger().SearchCommunity(cmd.Context(), strings.Join(args, " "))
		fmt.Println(res.Text)
		for _, src := range res.Sources {
			dimColor.Printf("  %s <%s>\n", src.Title, src.URI)
		}
		return nil
	}),
}

func init() {
	notifyAddCmd.Flags().String("type", string(model.NotificationSystem), "reply, mention, upvote, badge or system")
	notifyAddCmd.Flags().String("title", "", "Notification title")
	notifyAddCmd.Flags().String("message", "", "Notification message")
	notifyAddCmd.Flags().String("link", "", "Link target")
	notifyCmd.AddCommand(notifyListCmd, notifyAddCmd, notifyReadCmd, notifyReadAllCmd, notifyClearCmd)

	membersCmd.Flags().StringP("query", "q", "", "Search name or username")
	membersCmd.Flags().String("role", forum.RoleAll, "Only show members with this role")
	membersCmd.Flags().String("sort", string(forum.SortReputation), "reputation, name or newest")

	badgesCmd.Flags().String("category", "All", "Engagement, Expertise, Social or Special")

	meUpdateCmd.Flags().String("name", "", "Display name")
	meUpdateCmd.Flags().String("username", "", "Username")
	meUpdateCmd.Flags().String("role", "", "Role")
	meUpdateCmd.Flags().String("avatar", "", "Avatar URL")
	meCmd.AddCommand(meShowCmd, meUpdateCmd)

	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd)

	tagsSuggestCmd.Flags().String("title", "", "Post title")
	tagsSuggestCmd.Flags().String("content", "", "Post body")
	tagsCmd.AddCommand(tagsSuggestCmd)

	rootCmd.AddCommand(notifyCmd, membersCmd, badgesCmd, meCmd, themeCmd, tagsCmd, searchCmd)
}
