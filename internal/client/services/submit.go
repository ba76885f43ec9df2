package services

import (
	"context"
	"encoding/base64"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/reeflog/reeflog/internal/client/api"
	"github.com/reeflog/reeflog/internal/client/draft"
	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/logging"
	"github.com/reeflog/reeflog/internal/normalize"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// FinalFields are the fields owned by the last wizard step. They are kept in
// memory only and never written to the persisted draft.
type FinalFields struct {
	Rating     *int
	Difficulty string
	Notes      string
}

// Resolver resolves a free-text site name to a site id, best-effort.
type Resolver interface {
	ResolveSiteID(ctx context.Context, name string) string
}

// SubmitService turns the accumulated draft into a dive-log submission plus,
// when possible, a derived site review.
//
// The dive log is the record of truth: its failure is surfaced and stops
// everything. The review is a nice-to-have: its failure is logged and
// swallowed, and never taints the overall result.
type SubmitService struct {
	client api.Client
	drafts draft.Store
	sites  Resolver
	log    logging.Logger
}

// NewSubmitService wires the orchestrator.
func NewSubmitService(client api.Client, drafts draft.Store, sites Resolver, log logging.Logger) *SubmitService {
	return &SubmitService{client: client, drafts: drafts, sites: sites, log: log}
}

// Submit runs one submission attempt:
//
//  1. encode attachments (a read failure aborts before any network call),
//  2. assemble the payload, coercing all numeric and derived fields,
//  3. validate required fields, reporting every missing one at once,
//  4. create the dive log (fatal on failure, draft preserved),
//  5. resolve the site id if the draft has none,
//  6. best-effort: create the site review, primary endpoint then fallback,
//  7. clear the draft.
//
// There is no internal retry; the draft surviving a fatal failure is what
// makes a manual resubmit cheap.
func (s *SubmitService) Submit(ctx context.Context, rec models.DraftRecord, final FinalFields, photoPaths []string) error {
	photos, err := encodeAttachments(photoPaths)
	if err != nil {
		return err
	}

	payload := buildPayload(rec, final, photos)

	if missing := missingRequired(rec); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if err := s.client.CreateDiveLog(ctx, payload); err != nil {
		return &PrimarySubmissionError{Err: err}
	}

	s.submitReview(ctx, rec, final, photos)

	if err := s.drafts.Clear(ctx); err != nil {
		// The log made it to the server; failing to clear locally must not
		// look like a failed submission.
		s.log.Warn(ctx, "draft clear failed after successful submission", "error", err)
	}
	return nil
}

// missingRequired returns the user-facing labels of every required field
// the draft is still missing. Depth and bottom time must also parse as
// numbers, raw garbage counts as missing.
func missingRequired(rec models.DraftRecord) []string {
	var missing []string
	if rec.Title == "" {
		missing = append(missing, "title")
	}
	if rec.SiteID == "" && rec.SiteName == "" {
		missing = append(missing, "dive site")
	}
	if rec.Date == "" {
		missing = append(missing, "date")
	}
	if rec.DiveType == "" {
		missing = append(missing, "dive type")
	}
	if normalize.Number(rec.Depth) == nil {
		missing = append(missing, "depth")
	}
	if normalize.Number(rec.BottomTime) == nil {
		missing = append(missing, "bottom time")
	}
	return missing
}

func buildPayload(rec models.DraftRecord, final FinalFields, photos []models.Attachment) models.DiveLogPayload {
	p := models.DiveLogPayload{
		Title:        rec.Title,
		DivingSpotID: rec.SiteID,
		SiteName:     rec.SiteName,
		Date:         rec.Date,
		DiveType:     rec.DiveType,

		Weather:    rec.Weather,
		Water:      rec.Water,
		Visibility: rec.Visibility,
		Waves:      rec.Waves,
		Current:    rec.Current,

		AirTemperature:     normalize.Number(rec.AirTemp),
		SurfaceTemperature: normalize.Number(rec.SurfaceTemp),
		BottomTemperature:  normalize.Number(rec.BottomTemp),

		Suit:          rec.Suit,
		BallastWeight: normalize.Number(rec.Ballast),

		CylinderMaterial: rec.CylinderMaterial,
		CylinderSize:     rec.CylinderSize,
		GasMixture:       rec.GasMixture,
		InitialPressure:  normalize.Number(rec.InitialPressure),
		FinalPressure:    normalize.Number(rec.FinalPressure),

		AdditionalEquipment: normalize.Strings(rec.Equipment),
		EquipmentOther:      rec.EquipmentOther,

		Rating:          final.Rating,
		DifficultyLevel: normalize.DifficultyBucket(final.Difficulty),
		Notes:           final.Notes,

		Photos: photos,
	}

	if d := normalize.Number(rec.Depth); d != nil {
		p.Depth = *d
	}
	if bt := normalize.Number(rec.BottomTime); bt != nil {
		p.BottomTimeInMinutes = *bt
	}
	p.UsedGas = normalize.UsedGas(p.InitialPressure, p.FinalPressure)

	return p
}

// submitReview derives the site review from the just-submitted log and posts
// it. Nothing here can fail the submission: an unresolved site downgrades
// the review to skipped, and endpoint failures are logged and dropped.
func (s *SubmitService) submitReview(ctx context.Context, rec models.DraftRecord, final FinalFields, photos []models.Attachment) {
	siteID := rec.SiteID
	if siteID == "" {
		siteID = s.sites.ResolveSiteID(ctx, rec.SiteName)
	}
	if siteID == "" {
		s.log.Info(ctx, "site not resolved, review skipped", "site", rec.SiteName)
		return
	}
	if final.Rating == nil && final.Notes == "" && len(photos) == 0 {
		return
	}

	review := models.SiteReviewPayload{
		DivingSpotID:    siteID,
		Rating:          final.Rating,
		DifficultyLevel: normalize.DifficultyBucket(final.Difficulty),
		Visibility:      rec.Visibility,
		Comment:         final.Notes,
		Photos:          photos,
	}

	// Candidate endpoints in preference order; the first success wins.
	attempts := []func(context.Context) error{
		func(ctx context.Context) error { return s.client.CreateComment(ctx, review) },
		func(ctx context.Context) error { return s.client.CreateSpotComment(ctx, siteID, review) },
	}
	for i, attempt := range attempts {
		err := attempt(ctx)
		if err == nil {
			return
		}
		s.log.Warn(ctx, "review submission attempt failed", "attempt", i+1, "error", err)
	}
	s.log.Warn(ctx, "review dropped after all endpoints failed", "site", siteID)
}

// encodeAttachments reads every photo into its wire form. A single failed
// read aborts the whole set, so a submission can never carry a partial
// attachment list.
func encodeAttachments(paths []string) ([]models.Attachment, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	out := make([]models.Attachment, 0, len(paths))
	for _, p := range paths {
		data, err := readFile(p)
		if err != nil {
			return nil, &AttachmentReadError{Path: p, Err: err}
		}
		ct := mime.TypeByExtension(filepath.Ext(p))
		if ct == "" {
			ct = http.DetectContentType(data)
		}
		out = append(out, models.Attachment{
			ContentType: ct,
			Data:        base64.StdEncoding.EncodeToString(data),
		})
	}
	return out, nil
}
