package store

import (
	"context"
	"fmt"
	"time"

	"manageme.app/hub/internal/model"
)

// SeedDemoData loads the demo dataset used by development environments:
// five users, two workspaces, their channels, tasks and message history,
// and one pending invite. Everything goes through the store views so the
// fixture cannot violate integrity.
func SeedDemoData(ctx context.Context, m *Memory) error {
	users := m.Users()
	workspaces := m.Workspaces()
	channels := m.Channels()
	messages := m.Messages()
	tasks := m.Tasks()
	invites := m.Invites()

	demoUsers := []model.User{
		{ID: "user-1", Name: "John Doe", Email: "john.doe@manageme.com", Avatar: "JD"},
		{ID: "user-2", Name: "Alex Thompson", Email: "alex.thompson@manageme.com", Avatar: "AT"},
		{ID: "user-3", Name: "Sarah Wilson", Email: "sarah.wilson@manageme.com", Avatar: "SW"},
		{ID: "user-4", Name: "Michael Chen", Email: "michael.chen@manageme.com", Avatar: "MC"},
		{ID: "user-5", Name: "Emma Davis", Email: "emma.davis@manageme.com", Avatar: "ED"},
	}
	for i := range demoUsers {
		if err := users.Create(ctx, &demoUsers[i]); err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
	}

	allMembers := []string{"user-1", "user-2", "user-3", "user-4", "user-5"}
	if err := workspaces.Create(ctx, &model.Workspace{
		ID:          "workspace-1",
		Name:        "ManageMe Team",
		Description: "Main workspace for the ManageMe project",
		Icon:        "💼",
		OwnerID:     "user-1",
		MemberIDs:   allMembers,
		CreatedAt:   date("2024-09-01"),
	}); err != nil {
		return fmt.Errorf("seeding workspaces: %w", err)
	}
	if err := workspaces.Create(ctx, &model.Workspace{
		ID:          "workspace-2",
		Name:        "Personal Projects",
		Description: "Personal workspace for side projects",
		Icon:        "🚀",
		OwnerID:     "user-1",
		MemberIDs:   []string{"user-1"},
		CreatedAt:   date("2024-09-15"),
	}); err != nil {
		return fmt.Errorf("seeding workspaces: %w", err)
	}

	demoChannels := []model.Channel{
		{
			ID: "channel-1", WorkspaceID: "workspace-1", Name: "general",
			Description: "General chat for all team members", Kind: model.ChannelKindPublic,
			MemberIDs: allMembers, CreatedBy: "user-1", CreatedAt: date("2024-10-01"),
		},
		{
			ID: "channel-2", WorkspaceID: "workspace-1", Name: "development",
			Description: "Development and technical discussions", Kind: model.ChannelKindPublic,
			MemberIDs: []string{"user-1", "user-2", "user-4"}, CreatedBy: "user-1", CreatedAt: date("2024-10-10"),
		},
		{
			ID: "channel-3", WorkspaceID: "workspace-1", Name: "design",
			Description: "UI/UX design collaboration", Kind: model.ChannelKindPublic,
			MemberIDs: []string{"user-1", "user-3", "user-5"}, CreatedBy: "user-3", CreatedAt: date("2024-10-05"),
		},
		{
			ID: "channel-4", WorkspaceID: "workspace-1", Name: "my-tasks",
			Description: "Personal workspace for individual tasks", Kind: model.ChannelKindPrivate,
			MemberIDs: []string{"user-1"}, CreatedBy: "user-1", CreatedAt: date("2024-10-15"),
		},
		{
			ID: "channel-5", WorkspaceID: "workspace-2", Name: "general",
			Description: "General notes and ideas", Kind: model.ChannelKindPublic,
			MemberIDs: []string{"user-1"}, CreatedBy: "user-1", CreatedAt: date("2024-09-15"),
		},
	}
	for i := range demoChannels {
		if err := channels.Create(ctx, &demoChannels[i]); err != nil {
			return fmt.Errorf("seeding channels: %w", err)
		}
	}

	demoMessages := []model.Message{
		{
			ID: "msg-1", ChannelID: "channel-1", UserID: "user-2", UserName: "Alex Thompson", UserAvatar: "AT",
			Content:   "Hey team! Just wanted to share that the new project dashboard is looking great!",
			Timestamp: stamp("2024-10-28T09:30:00"),
		},
		{
			ID: "msg-2", ChannelID: "channel-1", UserID: "user-3", UserName: "Sarah Wilson", UserAvatar: "SW",
			Content:   "Thanks Alex! I love the new design. The UI is much more intuitive now.",
			Timestamp: stamp("2024-10-28T09:45:00"),
		},
		{
			ID: "msg-3", ChannelID: "channel-1", UserID: "user-1", UserName: "John Doe", UserAvatar: "JD",
			Content:   "Great work everyone! Let's aim to deploy this by end of week.",
			Timestamp: stamp("2024-10-28T10:15:00"),
		},
		{
			ID: "msg-4", ChannelID: "channel-2", UserID: "user-4", UserName: "Michael Chen", UserAvatar: "MC",
			Content:   "I've completed the API integration. Ready for testing.",
			Timestamp: stamp("2024-10-28T11:00:00"),
		},
		{
			ID: "msg-5", ChannelID: "channel-2", UserID: "user-2", UserName: "Alex Thompson", UserAvatar: "AT",
			Content:   "Excellent! I'll start the QA process this afternoon.",
			Timestamp: stamp("2024-10-28T11:30:00"),
		},
		{
			ID: "msg-6", ChannelID: "channel-3", UserID: "user-3", UserName: "Sarah Wilson", UserAvatar: "SW",
			Content:   "New mockups are ready! Check the shared folder.",
			Timestamp: stamp("2024-10-28T14:00:00"),
		},
		{
			ID: "msg-7", ChannelID: "channel-3", UserID: "user-5", UserName: "Emma Davis", UserAvatar: "ED",
			Content:   "These look amazing! Love the color scheme.",
			Timestamp: stamp("2024-10-28T14:30:00"),
		},
		{
			ID: "msg-9", ChannelID: "channel-5", UserID: "user-1", UserName: "John Doe", UserAvatar: "JD",
			Content:   "Starting work on the portfolio redesign.",
			Timestamp: stamp("2024-10-27T10:00:00"),
		},
	}
	for i := range demoMessages {
		if err := messages.Create(ctx, &demoMessages[i]); err != nil {
			return fmt.Errorf("seeding messages: %w", err)
		}
	}

	demoTasks := []model.Task{
		{
			ID: "task-1", Title: "Review Q4 Goals", Description: "Review and update quarterly objectives",
			AssignedTo: []string{"user-1", "user-2"}, Status: model.TaskStatusInProgress,
			DueDate: datePtr("2024-11-01"), CreatedBy: "user-1", CreatedAt: date("2024-10-25"),
			ChannelID: "channel-1", WorkspaceID: "workspace-1",
		},
		{
			ID: "task-2", Title: "API Integration", Description: "Integrate third-party API for data sync",
			AssignedTo: []string{"user-4"}, Status: model.TaskStatusDone,
			DueDate: datePtr("2024-10-28"), CreatedBy: "user-1", CreatedAt: date("2024-10-20"),
			ChannelID: "channel-2", WorkspaceID: "workspace-1",
		},
		{
			ID: "task-3", Title: "QA Testing", Description: "Complete QA testing for API integration",
			AssignedTo: []string{"user-2"}, Status: model.TaskStatusInProgress,
			DueDate: datePtr("2024-10-30"), CreatedBy: "user-1", CreatedAt: date("2024-10-28"),
			ChannelID: "channel-2", WorkspaceID: "workspace-1",
		},
		{
			ID: "task-4", Title: "Create Homepage Mockups", Description: "Design new homepage layout and components",
			AssignedTo: []string{"user-3"}, Status: model.TaskStatusDone,
			DueDate: datePtr("2024-10-28"), CreatedBy: "user-3", CreatedAt: date("2024-10-22"),
			ChannelID: "channel-3", WorkspaceID: "workspace-1",
		},
		{
			ID: "task-5", Title: "Design System Update", Description: "Update component library with new tokens",
			AssignedTo: []string{"user-5"}, Status: model.TaskStatusTodo,
			DueDate: datePtr("2024-11-05"), CreatedBy: "user-3", CreatedAt: date("2024-10-26"),
			ChannelID: "channel-3", WorkspaceID: "workspace-1",
		},
		{
			ID: "task-6", Title: "Review Documentation", Description: "Review and update project documentation",
			AssignedTo: []string{"user-1"}, Status: model.TaskStatusTodo,
			DueDate: datePtr("2024-11-01"), CreatedBy: "user-1", CreatedAt: date("2024-10-15"),
			ChannelID: "channel-4", WorkspaceID: "workspace-1",
		},
		{
			ID: "task-7", Title: "Portfolio Redesign", Description: "Redesign personal portfolio website",
			AssignedTo: []string{"user-1"}, Status: model.TaskStatusInProgress,
			DueDate: datePtr("2024-11-15"), CreatedBy: "user-1", CreatedAt: date("2024-10-20"),
			ChannelID: "channel-5", WorkspaceID: "workspace-2",
		},
		{
			ID: "task-8", Title: "Learn Next.js 15", Description: "Complete Next.js 15 tutorial and build sample app",
			AssignedTo: []string{"user-1"}, Status: model.TaskStatusTodo,
			DueDate: datePtr("2024-11-30"), CreatedBy: "user-1", CreatedAt: date("2024-10-26"),
			ChannelID: "channel-5", WorkspaceID: "workspace-2",
		},
	}
	for i := range demoTasks {
		if err := tasks.Create(ctx, &demoTasks[i]); err != nil {
			return fmt.Errorf("seeding tasks: %w", err)
		}
	}

	if err := invites.Create(ctx, &model.Invite{
		ID: "invite-1", ChannelID: "channel-2", ChannelName: "development", WorkspaceID: "workspace-1",
		InvitedBy: "user-1", InvitedEmail: "newuser@manageme.com",
		Status: model.InviteStatusPending, SentAt: date("2024-10-27"),
	}); err != nil {
		return fmt.Errorf("seeding invites: %w", err)
	}

	return nil
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func stamp(s string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", s)
	return t
}
