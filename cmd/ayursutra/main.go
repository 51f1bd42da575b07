package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ayursutra/platform/internal/access"
	"github.com/ayursutra/platform/internal/clinic"
	"github.com/ayursutra/platform/internal/config"
	"github.com/ayursutra/platform/internal/conversation"
	"github.com/ayursutra/platform/internal/intent"
	"github.com/ayursutra/platform/internal/observability/metrics"
	"github.com/ayursutra/platform/internal/reminders"
	"github.com/ayursutra/platform/internal/webchat"
	"github.com/ayursutra/platform/pkg/logging"
)

// The terminal client is the presentation layer for the AyurSutra core:
// role selection, navigation between role-gated screens, the chat assistant
// and the clinic dashboards, all driven from stdin.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewText(cfg.LogLevel)
	logger.Info("starting ayursutra", "env", cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chatMetrics := metrics.NewChatMetrics(nil)
	accessMetrics := metrics.NewAccessMetrics(nil)
	reminderMetrics := metrics.NewReminderMetrics(nil)

	controller := access.NewController(access.DefaultTable(), logger, accessMetrics)
	matcher := intent.NewMatcher(logger, chatMetrics)
	engine := conversation.NewEngine(matcher, cfg.TypingDelay, logger, chatMetrics)
	widgets := webchat.NewManager(engine, cfg.GreetingEnabled, logger, chatMetrics)

	store := clinic.NewStore()
	dashboard := clinic.NewDashboard(store)
	taskStore := reminders.NewStore()

	if cfg.SeedDemoData {
		now := time.Now().UTC()
		if err := clinic.Seed(ctx, store, now); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		upcoming, err := store.UpcomingSessions(ctx, now)
		if err == nil {
			scheduler := reminders.NewScheduler(taskStore, logger)
			if _, err := scheduler.ScheduleUpcoming(ctx, upcoming, cfg.ReminderLeadTime); err != nil {
				logger.Error("failed to schedule reminders", "error", err)
			}
		}
	}

	worker := reminders.NewWorker(taskStore, reminders.NewLogNotifier(logger), logger, reminderMetrics)
	go worker.Run(ctx, cfg.ReminderPollInterval)

	runShell(ctx, shellDeps{
		controller: controller,
		widgets:    widgets,
		store:      store,
		dashboard:  dashboard,
		tasks:      taskStore,
	})
}

type shellDeps struct {
	controller *access.Controller
	widgets    *webchat.Manager
	store      *clinic.Store
	dashboard  *clinic.Dashboard
	tasks      *reminders.Store
}

func runShell(ctx context.Context, deps shellDeps) {
	session := deps.controller.LoggedOut()
	var widget *webchat.Widget

	fmt.Println("AyurSutra — Panchakarma clinic management")
	fmt.Println(`Commands: role <patient|practitioner>, login, logout, nav <view>, views, chat <text>, transcript, schedule, dashboard, tasks, quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt(session)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "quit", "exit":
			return

		case "role":
			session = deps.controller.ChangeRole(session, access.Role(arg))
			if session.Active() {
				fmt.Println("role is fixed while logged in; log out first")
			}

		case "login":
			session = deps.controller.Login(session.Role)
			fmt.Printf("logged in as %s, showing %s\n", session.Role, session.CurrentView)

		case "logout":
			if widget != nil {
				deps.widgets.Close(widget.ID())
				widget = nil
			}
			session = deps.controller.Logout(session)
			fmt.Println("logged out")

		case "views":
			for _, v := range deps.controller.Table().AllowedViews(session.Role) {
				fmt.Println(" -", v)
			}

		case "nav":
			if !session.Active() {
				fmt.Println("log in first")
				continue
			}
			resolved := deps.controller.Navigate(session, access.ViewID(arg))
			fmt.Println("showing", resolved)

		case "chat":
			if !session.Active() || deps.controller.Navigate(session, access.ViewChat) != access.ViewChat {
				fmt.Println("the chat assistant is available on the patient side")
				continue
			}
			if widget == nil || widget.Closed() {
				widget = deps.widgets.Open()
			}
			if payload, ok := widget.Send(arg); ok {
				fmt.Printf("[assistant is typing…]\n(%s)\n", payload.Topic)
			}

		case "transcript":
			if widget == nil {
				fmt.Println("no open chat")
				continue
			}
			for _, m := range widget.Messages() {
				fmt.Printf("%s %s: %s\n", m.CreatedAt.Format("15:04:05"), m.Sender, m.Text)
			}

		case "schedule":
			printSchedule(ctx, deps, session)

		case "dashboard":
			printDashboard(ctx, deps, session)

		case "tasks":
			printTasks(ctx, deps, session)

		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func prompt(session *access.Session) {
	if session.Active() {
		fmt.Printf("[%s @ %s] > ", session.Role, session.CurrentView)
	} else {
		fmt.Printf("[logged out, role=%s] > ", session.Role)
	}
}

func printSchedule(ctx context.Context, deps shellDeps, session *access.Session) {
	if deps.controller.Navigate(session, access.ViewSchedule) != access.ViewSchedule {
		fmt.Println("schedule is not available here")
		return
	}
	sessions, err := deps.store.UpcomingSessions(ctx, time.Now().UTC())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range sessions {
		patient, err := deps.store.GetPatient(ctx, s.PatientID)
		name := "unknown"
		if err == nil {
			name = patient.Name
		}
		fmt.Printf(" - %s  %-12s %s\n", s.ScheduledAt.Format("Mon 15:04"), s.Therapy, name)
	}
}

func printDashboard(ctx context.Context, deps shellDeps, session *access.Session) {
	if deps.controller.Navigate(session, access.ViewAnalytics) != access.ViewAnalytics {
		fmt.Println("analytics are for practitioners")
		return
	}
	stats, err := deps.dashboard.Stats(ctx, time.Now().UTC())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("patients: %d  scheduled: %d  completed: %d  cancelled: %d\n",
		stats.PatientCount, stats.SessionsScheduled, stats.SessionsCompleted, stats.SessionsCancelled)
	fmt.Printf("completion: %.1f%%  avg rating: %.1f (%d reviews)\n",
		stats.CompletionPct, stats.AverageRating, stats.FeedbackCount)
	for _, tc := range stats.TherapyBreakdown {
		fmt.Printf("  %-12s %d\n", tc.Therapy, tc.Count)
	}
}

func printTasks(ctx context.Context, deps shellDeps, session *access.Session) {
	if deps.controller.Navigate(session, access.ViewTasks) != access.ViewTasks {
		fmt.Println("tasks are for practitioners")
		return
	}
	tasks, err := deps.tasks.ListByRole(ctx, string(session.Role))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return
	}
	for _, t := range tasks {
		fmt.Printf(" - [%s] %s (due %s)\n", t.Status, t.Title, t.DueAt.Format("Jan 2 15:04"))
	}
}
