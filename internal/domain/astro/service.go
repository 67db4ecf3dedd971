package astro

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/yanqian/astro-profile/pkg/errors"
	"github.com/yanqian/astro-profile/pkg/util"
)

// Service exposes birth-chart calculations and saved profiles.
type Service interface {
	Calculate(ctx context.Context, req Request) (Response, error)
	Save(ctx context.Context, userID int64, req Request) (Response, error)
	Latest(ctx context.Context, userID int64) (ProfileRecord, error)
	History(ctx context.Context, userID int64, limit int) ([]ProfileRecord, error)
	Signs() []SignInfo
	Trending(ctx context.Context, kind string, limit int) ([]SignCount, error)
}

const maxBirthPlaceLen = 100

var birthTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

type service struct {
	cfg      Config
	engine   *Engine
	repo     Repository
	stats    StatsStore
	daylight DaylightClock
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the astro domain. daylight may be nil.
func NewService(cfg Config, engine *Engine, repo Repository, stats StatsStore, daylight DaylightClock, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		engine:   engine,
		repo:     repo,
		stats:    stats,
		daylight: daylight,
		logger:   logger.With("component", "astro.service"),
		now:      util.NowUTC,
	}
}

type birthInput struct {
	date      string
	time      string
	place     string
	latitude  float64
	longitude float64
	timezone  string
	local     time.Time
	utc       time.Time
}

func (s *service) Calculate(ctx context.Context, req Request) (Response, error) {
	resp, _, err := s.calculate(ctx, req)
	return resp, err
}

func (s *service) Save(ctx context.Context, userID int64, req Request) (Response, error) {
	if userID <= 0 {
		return Response{}, apperrors.Wrap(CodeInvalidInput, "user id is required", nil)
	}
	resp, in, err := s.calculate(ctx, req)
	if err != nil {
		return Response{}, err
	}
	record, err := s.repo.Save(ctx, ProfileRecord{
		UserID:     userID,
		BirthDate:  in.date,
		BirthTime:  in.time,
		BirthPlace: in.place,
		Latitude:   in.latitude,
		Longitude:  in.longitude,
		Timezone:   in.timezone,
		Result:     resp,
	})
	if err != nil {
		return Response{}, apperrors.Wrap(CodeStorage, "failed to save astro profile", err)
	}
	s.logger.Info("astro profile saved", "user_id", userID, "profile_id", record.ID)
	return resp, nil
}

func (s *service) Latest(ctx context.Context, userID int64) (ProfileRecord, error) {
	record, found, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return ProfileRecord{}, apperrors.Wrap(CodeStorage, "failed to load astro profile", err)
	}
	if !found {
		return ProfileRecord{}, apperrors.Wrap(CodeNotFound, "no astro profile saved yet", nil)
	}
	return record, nil
}

func (s *service) History(ctx context.Context, userID int64, limit int) ([]ProfileRecord, error) {
	if limit <= 0 || (s.cfg.HistoryLimit > 0 && limit > s.cfg.HistoryLimit) {
		limit = s.cfg.HistoryLimit
	}
	records, err := s.repo.List(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.Wrap(CodeStorage, "failed to list astro profiles", err)
	}
	return records, nil
}

func (s *service) Signs() []SignInfo {
	return AllSigns()
}

func (s *service) Trending(ctx context.Context, kind string, limit int) ([]SignCount, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = KindZodiac
	}
	switch kind {
	case KindZodiac, KindAscendant, KindMoon:
	default:
		return nil, apperrors.Wrap(CodeInvalidInput, "kind must be one of zodiac, ascendant, moon", nil)
	}
	if limit <= 0 || limit > signCount {
		limit = s.cfg.TrendingLimit
	}
	if limit <= 0 || limit > signCount {
		limit = signCount
	}
	counts, err := s.stats.Top(ctx, kind, limit)
	if err != nil {
		return nil, apperrors.Wrap(CodeStorage, "failed to load sign statistics", err)
	}
	return counts, nil
}

func (s *service) calculate(ctx context.Context, req Request) (Response, birthInput, error) {
	in, err := s.parseRequest(req)
	if err != nil {
		return Response{}, birthInput{}, err
	}

	profile, err := s.engine.Compute(CivilMomentFromTime(in.utc), CoordinateFromDegrees(in.latitude, in.longitude))
	if err != nil {
		s.logger.Warn("astro calculation failed", "code", apperrors.CodeOf(err), "error", err)
		return Response{}, birthInput{}, err
	}

	info := AdditionalInfo{
		Timezone:           in.timezone,
		UTC:                in.utc,
		JulianDate:         profile.Moment.JD,
		JulianCenturies:    profile.Moment.T,
		Obliquity:          RadiansToDegrees(profile.Obliquity),
		SolarLongitude:     profile.SolarLongitude,
		LunarLongitude:     profile.LunarLongitude,
		AscendantLongitude: profile.AscendantLongitude,
	}
	if s.daylight != nil {
		rise, set := s.daylight.SunriseSunset(in.latitude, in.longitude, in.local)
		if !rise.IsZero() && !set.IsZero() {
			info.Sunrise = &rise
			info.Sunset = &set
		}
	}

	resp := Response{
		SunPosition: HorizontalPosition{
			Azimuth:  roundAzimuth(profile.SunPosition.Azimuth),
			Altitude: round2(profile.SunPosition.Altitude),
		},
		ZodiacSign:     profile.ZodiacSign,
		Ascendant:      profile.Ascendant,
		MoonSign:       profile.MoonSign,
		BirthPlace:     in.place,
		AdditionalInfo: info,
	}
	s.logger.Info("astro profile calculated",
		"jd", profile.Moment.JD,
		"zodiac", profile.ZodiacSign.String(),
		"ascendant", profile.Ascendant.String(),
		"moon", profile.MoonSign.String(),
	)
	s.recordStats(ctx, profile)
	return resp, in, nil
}

func (s *service) parseRequest(req Request) (birthInput, error) {
	place := strings.TrimSpace(req.BirthPlace)
	dateRaw := strings.TrimSpace(req.Date)
	timeRaw := strings.TrimSpace(req.BirthTime)
	if dateRaw == "" || timeRaw == "" || place == "" || req.Latitude == nil || req.Longitude == nil {
		return birthInput{}, apperrors.Wrap(CodeInvalidInput, "please provide all required fields", nil)
	}
	if utf8.RuneCountInString(place) > maxBirthPlaceLen {
		return birthInput{}, apperrors.Wrap(CodeInvalidInput, "birth place cannot exceed 100 characters", nil)
	}

	match := birthTimePattern.FindStringSubmatch(timeRaw)
	if match == nil {
		return birthInput{}, apperrors.Wrap(CodeInvalidMoment, "birth time must be in HH:MM format", nil)
	}
	hour := int(match[1][0]-'0')*10 + int(match[1][1]-'0')
	minute := int(match[2][0]-'0')*10 + int(match[2][1]-'0')

	year, month, day, err := parseCalendarDate(dateRaw)
	if err != nil {
		return birthInput{}, apperrors.Wrap(CodeInvalidMoment, "date must be formatted as YYYY-MM-DD", err)
	}

	lat, lon := *req.Latitude, *req.Longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return birthInput{}, apperrors.Wrap(CodeInvalidCoordinate, "latitude must be between -90 and 90", nil)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return birthInput{}, apperrors.Wrap(CodeInvalidCoordinate, "longitude must be between -180 and 180", nil)
	}

	tzName := firstNonEmpty(strings.TrimSpace(req.Timezone), s.cfg.DefaultTimezone, "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return birthInput{}, apperrors.Wrap(CodeInvalidInput, "unknown timezone", err)
	}

	local := time.Date(year, month, day, hour, minute, 0, 0, loc)
	if local.After(s.now()) {
		return birthInput{}, apperrors.Wrap(CodeInvalidMoment, "birth date must be in the past", nil)
	}
	return birthInput{
		date:      local.Format("2006-01-02"),
		time:      timeRaw,
		place:     place,
		latitude:  lat,
		longitude: lon,
		timezone:  tzName,
		local:     local,
		utc:       local.UTC(),
	}, nil
}

// parseCalendarDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns
// the calendar date as written.
func parseCalendarDate(raw string) (int, time.Month, int, error) {
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d.Year(), d.Month(), d.Day(), nil
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return 0, 0, 0, err
	}
	return ts.Year(), ts.Month(), ts.Day(), nil
}

func (s *service) recordStats(ctx context.Context, p Profile) {
	if s.stats == nil {
		return
	}
	for kind, sign := range map[string]ZodiacSign{
		KindZodiac:    p.ZodiacSign,
		KindAscendant: p.Ascendant,
		KindMoon:      p.MoonSign,
	} {
		if err := s.stats.Increment(ctx, kind, sign); err != nil {
			s.logger.Warn("sign statistics update failed", "kind", kind, "error", err)
		}
	}
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func roundAzimuth(v float64) float64 {
	r := round2(v)
	if r >= 360 {
		return 0
	}
	return r
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
