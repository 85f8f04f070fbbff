package progress

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"learninghub/internal/utils/clock"
)

// Servicer интерфейс сервиса прогресса
type Servicer interface {
	Save(ctx context.Context, req SaveRequest) (Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	Report(ctx context.Context) (Report, error)
}

// Directory источник имен пользователей для отчета
type Directory interface {
	Names(ctx context.Context) (map[string]string, error)
}

type Service struct {
	repo  Repository
	dir   Directory
	clock clock.Clock
	log   *slog.Logger
}

// NewService создает сервис прогресса. dir может быть nil.
func NewService(repo Repository, dir Directory, clk clock.Clock, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		dir:   dir,
		clock: clk,
		log:   log.With(slog.String("component", "progress_service")),
	}
}

func (s *Service) Save(ctx context.Context, req SaveRequest) (Record, error) {
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.VideoID) == "" {
		return Record{}, ErrInvalidInput
	}

	now := s.clock.Now().UTC()
	rec := Record{
		UserID:      req.UserID,
		UserName:    strings.TrimSpace(req.UserName),
		EmployeeID:  strings.TrimSpace(req.EmployeeID),
		VideoID:     req.VideoID,
		CategoryID:  req.CategoryID,
		Progress:    Round1(clamp(req.Progress, 0, 100)),
		WatchTime:   max(req.WatchTime, 0),
		LastWatched: now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("save progress: %w", err)
	}

	s.log.Debug("progress saved",
		slog.String("user_id", rec.UserID),
		slog.String("video_id", rec.VideoID),
		slog.Float64("progress", rec.Progress),
	)

	return rec, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	sortRecords(records)

	return records, nil
}

// Report собирает прогресс всех пользователей и сводку по каждому
func (s *Service) Report(ctx context.Context) (Report, error) {
	var (
		records []Record
		names   map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.repo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list all progress: %w", err)
		}
		return nil
	})
	if s.dir != nil {
		g.Go(func() error {
			var err error
			names, err = s.dir.Names(gctx)
			if err != nil {
				// имена необязательны, отчет строится и без них
				s.log.Warn("load user names", slog.String("error", err.Error()))
				names = nil
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	sortRecords(records)

	return Report{
		Progress: records,
		Users:    Summarize(records, names),
	}, nil
}

// Summarize считает статистику по пользователям. Видео считается пройденным при progress >= 80.
func Summarize(records []Record, names map[string]string) []UserSummary {
	byUser := make(map[string]*UserSummary)
	totals := make(map[string]float64)

	for _, r := range records {
		sum, ok := byUser[r.UserID]
		if !ok {
			sum = &UserSummary{
				UserID:     r.UserID,
				UserName:   r.UserName,
				EmployeeID: r.EmployeeID,
			}
			byUser[r.UserID] = sum
		}
		if sum.UserName == "" {
			sum.UserName = r.UserName
		}
		sum.TotalVideos++
		if r.Progress >= ReportCompletedPercent {
			sum.CompletedVideos++
		}
		totals[r.UserID] += r.Progress
		if r.LastWatched.After(sum.LastActivity) {
			sum.LastActivity = r.LastWatched
		}
	}

	out := make([]UserSummary, 0, len(byUser))
	for id, sum := range byUser {
		if name, ok := names[id]; ok && name != "" {
			sum.UserName = name
		}
		sum.AvgProgress = Round1(totals[id] / float64(sum.TotalVideos))
		out = append(out, *sum)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out
}

func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].UserID != records[j].UserID {
			return records[i].UserID < records[j].UserID
		}
		return records[i].VideoID < records[j].VideoID
	})
}
