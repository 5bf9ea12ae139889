package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/shared"
)

// StatsService produces read-only rollups over the session log. Every call
// re-reads the current snapshot and derives from scratch; nothing is cached
// or maintained incrementally. The rollups themselves are pure functions of
// the snapshot, which keeps them testable without a database.
//
// Ranking ties keep the first-seen order of the grouped rows: every sort in
// this file is stable and groups are accumulated in scan order.
type StatsService struct {
	context.DefaultService

	sqlSvc *SqliteService

	now func() time.Time
}

const STATS_SVC = "stats_svc"

func (svc StatsService) Id() string {
	return STATS_SVC
}

func (svc *StatsService) Configure(ctx *context.Context) error {
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *StatsService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	return nil
}

// ==================== SNAPSHOT ====================

type statsSnapshot struct {
	sessions []model.GameSession
	users    map[string]model.User
	games    map[string]model.Game
	catalog  []model.Game
}

func (svc *StatsService) snapshot() (*statsSnapshot, error) {
	sessions, err := svc.sqlSvc.Sessions().GetSessions()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	users, err := svc.sqlSvc.Users().GetUsers()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	games, err := svc.sqlSvc.Games().GetGames()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	snap := &statsSnapshot{
		sessions: sessions,
		users:    make(map[string]model.User, len(users)),
		games:    make(map[string]model.Game, len(games)),
		catalog:  games,
	}
	for _, u := range users {
		snap.users[u.ID] = u
	}
	for _, g := range games {
		snap.games[g.ID] = g
	}

	return snap, nil
}

func displayName(users map[string]model.User, userID string) string {
	if u, ok := users[userID]; ok {
		return u.FirstName + " " + u.LastName
	}
	return "Unknown User"
}

func gameName(games map[string]model.Game, gameID string) string {
	if g, ok := games[gameID]; ok {
		return g.Name
	}
	return "Unknown Game"
}

// ==================== USER BREAKDOWN ====================

// GetUserStats returns a user's per-game minute totals plus the grand total.
// Games the user never played are not backfilled here; that is a display
// concern.
func (svc *StatsService) GetUserStats(userID string) (*dto.UserStatsResponse, error) {
	if _, err := svc.sqlSvc.Users().GetUser(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}

	var userSessions []model.GameSession
	for _, s := range snap.sessions {
		if s.UserID == userID {
			userSessions = append(userSessions, s)
		}
	}

	resp := buildUserGameBreakdown(userSessions, snap.games)

	log.WithFields(log.Fields{
		"user_id":       userID,
		"games_played":  len(resp.GameStats),
		"total_minutes": resp.TotalMinutes,
		"session_count": len(userSessions),
	}).Info("User statistics retrieved")

	return resp, nil
}

func buildUserGameBreakdown(sessions []model.GameSession, games map[string]model.Game) *dto.UserStatsResponse {
	type agg struct {
		stat  dto.GameStat
		order int
	}

	byGame := make(map[string]*agg)
	order := 0
	for _, s := range sessions {
		name := gameName(games, s.GameID)
		entry, ok := byGame[name]
		if !ok {
			var icon string
			if g, found := games[s.GameID]; found {
				icon = g.ImageURL
			}
			entry = &agg{stat: dto.GameStat{GameName: name, IconURL: icon}, order: order}
			byGame[name] = entry
			order++
		}
		entry.stat.MinutesPlayed += s.PlayedSeconds
	}

	stats := make([]*agg, 0, len(byGame))
	for _, a := range byGame {
		stats = append(stats, a)
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].order < stats[j].order })

	resp := &dto.UserStatsResponse{GameStats: make([]dto.GameStat, 0, len(stats))}
	for _, a := range stats {
		resp.GameStats = append(resp.GameStats, a.stat)
		resp.TotalMinutes += a.stat.MinutesPlayed
	}

	return resp
}

// ==================== RANKED LEADERBOARDS ====================

type userGroup struct {
	userID     string
	wins       int
	totalGames int
	playtime   float64
}

// groupByUser accumulates per-user totals in first-seen scan order,
// optionally filtered to a single game.
func groupByUser(sessions []model.GameSession, gameID string) []userGroup {
	index := make(map[string]int)
	var groups []userGroup

	for _, s := range sessions {
		if gameID != "" && s.GameID != gameID {
			continue
		}

		i, ok := index[s.UserID]
		if !ok {
			i = len(groups)
			index[s.UserID] = i
			groups = append(groups, userGroup{userID: s.UserID})
		}

		groups[i].totalGames++
		groups[i].playtime += s.PlayedSeconds
		if s.Result == model.ResultWin {
			groups[i].wins++
		}
	}

	return groups
}

// GetWinsLeaderboard ranks users by win count.
func (svc *StatsService) GetWinsLeaderboard(gameID string, limit int) ([]dto.WinsLeaderboardEntry, error) {
	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}
	return buildWinsLeaderboard(snap.sessions, snap.users, gameID, limit), nil
}

func buildWinsLeaderboard(sessions []model.GameSession, users map[string]model.User, gameID string, limit int) []dto.WinsLeaderboardEntry {
	groups := groupByUser(sessions, gameID)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].wins > groups[j].wins })
	groups = truncateGroups(groups, limit)

	entries := make([]dto.WinsLeaderboardEntry, 0, len(groups))
	for i, g := range groups {
		entries = append(entries, dto.WinsLeaderboardEntry{
			Rank:       i + 1,
			UserID:     g.userID,
			UserName:   displayName(users, g.userID),
			TotalWins:  g.wins,
			TotalGames: g.totalGames,
		})
	}
	return entries
}

// GetPlaytimeLeaderboard ranks users by summed playtime.
func (svc *StatsService) GetPlaytimeLeaderboard(gameID string, limit int) ([]dto.PlaytimeLeaderboardEntry, error) {
	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}
	return buildPlaytimeLeaderboard(snap.sessions, snap.users, gameID, limit), nil
}

func buildPlaytimeLeaderboard(sessions []model.GameSession, users map[string]model.User, gameID string, limit int) []dto.PlaytimeLeaderboardEntry {
	groups := groupByUser(sessions, gameID)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].playtime > groups[j].playtime })
	groups = truncateGroups(groups, limit)

	entries := make([]dto.PlaytimeLeaderboardEntry, 0, len(groups))
	for i, g := range groups {
		entries = append(entries, dto.PlaytimeLeaderboardEntry{
			Rank:          i + 1,
			UserID:        g.userID,
			UserName:      displayName(users, g.userID),
			TotalPlaytime: g.playtime,
			TotalGames:    g.totalGames,
		})
	}
	return entries
}

// GetWinRateLeaderboard ranks users by win percentage. Users with fewer than
// the minimum sample of games are excluded entirely.
func (svc *StatsService) GetWinRateLeaderboard(gameID string, limit int) ([]dto.WinRateLeaderboardEntry, error) {
	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}
	return buildWinRateLeaderboard(snap.sessions, snap.users, gameID, limit), nil
}

func buildWinRateLeaderboard(sessions []model.GameSession, users map[string]model.User, gameID string, limit int) []dto.WinRateLeaderboardEntry {
	groups := groupByUser(sessions, gameID)

	qualified := groups[:0:0]
	for _, g := range groups {
		if g.totalGames >= shared.MinGamesForWinRate {
			qualified = append(qualified, g)
		}
	}

	rate := func(g userGroup) float64 {
		return math.Round(float64(g.wins)/float64(g.totalGames)*100*100) / 100
	}

	sort.SliceStable(qualified, func(i, j int) bool { return rate(qualified[i]) > rate(qualified[j]) })
	qualified = truncateGroups(qualified, limit)

	entries := make([]dto.WinRateLeaderboardEntry, 0, len(qualified))
	for i, g := range qualified {
		entries = append(entries, dto.WinRateLeaderboardEntry{
			Rank:       i + 1,
			UserID:     g.userID,
			UserName:   displayName(users, g.userID),
			Wins:       g.wins,
			TotalGames: g.totalGames,
			WinRate:    rate(g),
		})
	}
	return entries
}

func truncateGroups(groups []userGroup, limit int) []userGroup {
	if limit <= 0 {
		limit = 10
	}
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// ==================== SESSION LEADERBOARD ====================

// GetSessionLeaderboard lists every individual session, longest first, with
// denormalized display names.
func (svc *StatsService) GetSessionLeaderboard() ([]dto.SessionLeaderboardEntry, error) {
	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}

	entries := buildSessionLeaderboard(snap.sessions, snap.users, snap.games)

	log.WithField("total_entries", len(entries)).Info("Leaderboard retrieved")
	return entries, nil
}

func buildSessionLeaderboard(sessions []model.GameSession, users map[string]model.User, games map[string]model.Game) []dto.SessionLeaderboardEntry {
	sorted := make([]model.GameSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PlayedSeconds > sorted[j].PlayedSeconds })

	entries := make([]dto.SessionLeaderboardEntry, 0, len(sorted))
	for _, s := range sorted {
		entries = append(entries, dto.SessionLeaderboardEntry{
			UserName: displayName(users, s.UserID),
			GameName: gameName(games, s.GameID),
			Minutes:  s.PlayedSeconds,
		})
	}
	return entries
}

// ==================== ALL-USERS LEADERBOARD ====================

// GetAllUsersLeaderboard ranks every user by total minutes across all games.
func (svc *StatsService) GetAllUsersLeaderboard() ([]dto.UserTotalEntry, error) {
	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}

	entries := buildAllUsersLeaderboard(snap.sessions, snap.users)

	fields := log.Fields{"total_users": len(entries)}
	if len(entries) > 0 {
		fields["top_user"] = entries[0].UserName
		fields["top_user_minutes"] = entries[0].TotalMinutes
	}
	log.WithFields(fields).Info("All users leaderboard retrieved")

	return entries, nil
}

func buildAllUsersLeaderboard(sessions []model.GameSession, users map[string]model.User) []dto.UserTotalEntry {
	index := make(map[string]int)
	var entries []dto.UserTotalEntry

	for _, s := range sessions {
		i, ok := index[s.UserID]
		if !ok {
			i = len(entries)
			index[s.UserID] = i
			entries = append(entries, dto.UserTotalEntry{
				UserID:   s.UserID,
				UserName: displayName(users, s.UserID),
			})
		}
		entries[i].TotalMinutes += s.PlayedSeconds
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].TotalMinutes > entries[j].TotalMinutes })
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// ==================== GAME FREQUENCY ====================

// GetGameFrequency returns, for every catalog game, how often and how long
// each user played it. Unplayed games map to an empty list, not a missing key.
func (svc *StatsService) GetGameFrequency() (map[string][]dto.GameFrequencyEntry, error) {
	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}

	data := buildGameFrequency(snap.catalog, snap.sessions, snap.users)

	total := 0
	for _, entries := range data {
		total += len(entries)
	}
	log.WithFields(log.Fields{
		"games_analyzed": len(snap.catalog),
		"total_records":  total,
	}).Info("Game frequency statistics retrieved")

	return data, nil
}

func buildGameFrequency(catalog []model.Game, sessions []model.GameSession, users map[string]model.User) map[string][]dto.GameFrequencyEntry {
	data := make(map[string][]dto.GameFrequencyEntry, len(catalog))

	for _, game := range catalog {
		index := make(map[string]int)
		entries := make([]dto.GameFrequencyEntry, 0)

		for _, s := range sessions {
			if s.GameID != game.ID {
				continue
			}

			name := displayName(users, s.UserID)
			i, ok := index[name]
			if !ok {
				i = len(entries)
				index[name] = i
				entries = append(entries, dto.GameFrequencyEntry{User: name})
			}
			entries[i].TimesPlayed++
			entries[i].TotalMinutes += s.PlayedSeconds
		}

		data[game.Name] = entries
	}

	return data
}

// ==================== WEEKLY SERIES ====================

// GetWeeklySeries buckets the selected game's sessions by the calendar date
// of their start time over the trailing 7 days including today. The grid is
// dense: every user with any session of the game appears on every day.
func (svc *StatsService) GetWeeklySeries(gameName string) (*dto.WeeklySeriesResponse, error) {
	if gameName == "" {
		return nil, shared.NewBadRequestError(nil, "Game name required")
	}

	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}

	return buildWeeklySeries(gameName, snap.sessions, snap.users, snap.games, svc.now()), nil
}

func buildWeeklySeries(name string, sessions []model.GameSession, users map[string]model.User, games map[string]model.Game, now time.Time) *dto.WeeklySeriesResponse {
	var filtered []model.GameSession
	for _, s := range sessions {
		if gameName(games, s.GameID) == name {
			filtered = append(filtered, s)
		}
	}

	// Distinct players across the whole dataset, first-seen order.
	var players []string
	seen := make(map[string]bool)
	for _, s := range filtered {
		dn := displayName(users, s.UserID)
		if !seen[dn] {
			seen[dn] = true
			players = append(players, dn)
		}
	}

	resp := &dto.WeeklySeriesResponse{
		GameName: name,
		Days:     make([]dto.WeeklyDay, 0, 7),
	}

	for offset := -6; offset <= 0; offset++ {
		day := now.AddDate(0, 0, offset)
		dateStr := day.Format("2006-01-02")

		minutes := make(map[string]float64, len(players))
		for _, p := range players {
			minutes[p] = 0
		}

		for _, s := range filtered {
			if s.StartTime.Format("2006-01-02") != dateStr {
				continue
			}
			minutes[displayName(users, s.UserID)] += s.PlayedSeconds
		}

		resp.Days = append(resp.Days, dto.WeeklyDay{
			Day:     day.Format("Mon"),
			Date:    dateStr,
			Minutes: minutes,
		})
	}

	return resp
}

// ==================== DENORMALIZED SESSION DUMP ====================

// GetAllSessionDetails returns every session with display names attached,
// newest first. The stats pages derive their tables and charts from this.
func (svc *StatsService) GetAllSessionDetails() ([]dto.SessionDetailResponse, error) {
	snap, err := svc.snapshot()
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionDetailResponse, 0, len(snap.sessions))
	for i := range snap.sessions {
		s := &snap.sessions[i]
		out = append(out, dto.SessionDetailResponse{
			SessionResponse: *mapSessionResponse(s),
			UserName:        displayName(snap.users, s.UserID),
			GameName:        gameName(snap.games, s.GameID),
		})
	}

	log.WithField("session_count", len(out)).Info("Retrieved all game sessions")
	return out, nil
}
