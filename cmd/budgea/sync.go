package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"budgea/internal/infrastructure/postgres/listener"
	"budgea/internal/scheduler"
	"budgea/internal/shared/logging"
	"budgea/internal/shared/telemetry"
)

const shutdownTimeout = 30 * time.Second

// UserSyncStatus is the outcome of one user's sync.
type UserSyncStatus struct {
	UserID int64  `json:"user_id"`
	Error  string `json:"error,omitempty"`
}

type SyncSummary struct {
	Users  []UserSyncStatus `json:"users"`
	Failed int              `json:"failed"`
}

// SyncOnceHandler syncs userID, or every linked user when userID is zero.
type SyncOnceHandler func(ctx context.Context, userID int64) (*SyncSummary, error)

// SyncDaemonHandler blocks until ctx is done.
type SyncDaemonHandler func(ctx context.Context) error

func NewCmdSync(w io.Writer, rf *RootFlags) *cobra.Command {
	once := func(ctx context.Context, userID int64) (*SyncSummary, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		st, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		svc, err := a.syncServices(st)
		if err != nil {
			return nil, err
		}

		var summary *SyncSummary
		err = logging.Run("Command", "sync", a.log, func(ld *logging.LogData) error {
			var jobs []scheduler.Job
			if userID != 0 {
				jobs = []scheduler.Job{scheduler.NewUserSyncJob(userID, svc.accounts, svc.transactions, a.log)}
			} else {
				provider := scheduler.SyncJobProvider(st.users, svc.accounts, svc.transactions, a.log)
				if jobs, err = provider(ctx); err != nil {
					return err
				}
			}
			summary = runJobs(ctx, jobs, a.cfg.Scheduler.WorkerCount, ld)
			ld.AddData("users", len(summary.Users))
			ld.AddData("failed", summary.Failed)
			return nil
		})
		return summary, err
	}

	daemon := func(ctx context.Context) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		return a.runDaemon(ctx)
	}

	return BuildCmdSync(w, once, daemon, rf)
}

func BuildCmdSync(w io.Writer, once SyncOnceHandler, daemon SyncDaemonHandler, rf *RootFlags) *cobra.Command {
	var (
		runOnce bool
		userID  int64
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror linked users' accounts and transactions",
		Long: "Without --once, runs as a daemon syncing every linked user at the configured\n" +
			"SCHEDULER_TIMES and right after a new user is linked.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !runOnce {
				if userID != 0 {
					return fmt.Errorf("--user-id requires --once")
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return daemon(ctx)
			}

			summary, err := once(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				if err := printJSON(w, summary); err != nil {
					return err
				}
			} else {
				t := newTable(w, "USER", "STATUS", "ERROR")
				for _, u := range summary.Users {
					status := "ok"
					if u.Error != "" {
						status = "failed"
					}
					t.row(u.UserID, status, u.Error)
				}
				if err := t.flush(); err != nil {
					return err
				}
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d user syncs failed", summary.Failed, len(summary.Users))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&runOnce, "once", false, "Sync once and exit")
	cmd.Flags().Int64Var(&userID, "user-id", 0, "Only sync this linked user (with --once)")
	return cmd
}

// runJobs executes jobs with at most limit running at once. Failures are
// recorded in the summary and do not stop the other jobs. When ld is set the
// summed execution time of all jobs is added under job_time.
func runJobs(ctx context.Context, jobs []scheduler.Job, limit int, ld *logging.LogData) *SyncSummary {
	summary := &SyncSummary{Users: make([]UserSyncStatus, len(jobs))}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		g.Go(func() error {
			if ld != nil {
				defer ld.AddToExistingTiming("job_time")()
			}
			status := UserSyncStatus{UserID: job.UserID()}
			if err := job.Execute(gctx); err != nil {
				status.Error = err.Error()
				mu.Lock()
				summary.Failed++
				mu.Unlock()
			}
			summary.Users[i] = status
			return nil
		})
	}
	_ = g.Wait()
	return summary
}

func (a *app) runDaemon(ctx context.Context) error {
	if !a.cfg.Scheduler.Enabled {
		return fmt.Errorf("scheduler is disabled (SCHEDULER_ENABLED=false), use --once")
	}

	if a.cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, telemetry.Config{
			ServiceName:  a.cfg.Telemetry.ServiceName,
			Environment:  a.cfg.Telemetry.Environment,
			OTLPEndpoint: a.cfg.Telemetry.OTLPEndpoint,
			MetricsPort:  a.cfg.Telemetry.MetricsPort,
		}, a.log)
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				a.log.WithError(err).Error("Failed to shut down telemetry")
			}
		}()
	}

	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()
	svc, err := a.syncServices(st)
	if err != nil {
		return err
	}

	sched, err := scheduler.New(scheduler.Config{
		ScheduleTimes: a.cfg.Scheduler.ScheduleTimes,
		WorkerCount:   a.cfg.Scheduler.WorkerCount,
		JobDelay:      a.cfg.Scheduler.JobDelay,
		QueueSize:     a.cfg.Scheduler.QueueSize,
		RunOnStartup:  a.cfg.Scheduler.RunOnStartup,
		JobProvider:   scheduler.SyncJobProvider(st.users, svc.accounts, svc.transactions, a.log),
		Logger:        a.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	sched.Start()

	onLink := func(ctx context.Context, linkedUserID int64) {
		job := scheduler.NewUserSyncJob(linkedUserID, svc.accounts, svc.transactions, a.log)
		if err := sched.Submit(job); err != nil {
			a.log.WithError(err).WithField("user_id", linkedUserID).Warn("Failed to queue initial sync")
		}
	}
	links := listener.NewLinkListener(a.cfg.Database.URL(), onLink, a.log)
	links.Start(ctx)

	a.log.WithFields(logrus.Fields{
		"next_run": sched.NextRun().Format(time.RFC3339),
		"times":    a.cfg.Scheduler.ScheduleTimes,
	}).Info("Sync daemon running")

	<-ctx.Done()
	a.log.Info("Shutting down sync daemon")
	links.Stop()
	sched.Shutdown(shutdownTimeout)
	return nil
}
