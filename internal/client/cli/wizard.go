package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/client/services"
)

// Fixed vocabularies the wizard offers. Everything is skippable; the only
// hard requirements are checked at submission time.
var (
	diveTypes   = []string{"boat", "shore", "night", "drift", "wreck", "cave"}
	weatherTags = []string{"sunny", "cloudy", "rainy", "windy"}
	waterTags   = []string{"calm", "choppy", "rough"}
	visTags     = []string{"low", "medium", "high"}
	waveTags    = []string{"none", "small", "medium", "large"}
	currentTags = []string{"none", "weak", "medium", "strong"}
	suitTypes   = []string{"none", "shorty", "wet 3mm", "wet 5mm", "wet 7mm", "semi-dry", "dry"}
	cylMats     = []string{"steel", "aluminium"}
	gasMixes    = []string{"air", "nitrox32", "nitrox36", "trimix"}
	diffLabels  = []string{"small", "medium", "large"}
	equipTags   = []string{"torch", "knife", "buoy", "camera", "compass", "gloves", "computer"}
)

// askText prompts with the current draft value as the default; empty input
// keeps it, so re-running a step only changes what the user retypes.
func (a *App) askText(prompt, current string) (*string, error) {
	if current != "" {
		prompt += " [" + current + "]"
	}
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	return &v, nil
}

func (a *App) askChoice(prompt string, options []string, current string) (*string, error) {
	if current != "" {
		prompt += " [" + current + "]"
	}
	v, err := GetChoice(a.reader, prompt, options, a.out)
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	return &v, nil
}

// StepBasics is wizard step 1: title, site, date, dive type.
func (a *App) StepBasics(ctx context.Context) error {
	rec, err := a.drafts.Load(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	var patch models.DraftPatch
	if patch.Title, err = a.askText("- Dive title", rec.Title); err != nil {
		return err
	}
	if patch.SiteName, err = a.askText("- Dive site name", rec.SiteName); err != nil {
		return err
	}
	if patch.Date, err = a.askText("- Date (YYYY-MM-DD)", rec.Date); err != nil {
		return err
	}
	if patch.DiveType, err = a.askChoice("- Dive type", diveTypes, rec.DiveType); err != nil {
		return err
	}

	return a.saveStep(ctx, patch, "basics")
}

// StepConditions is wizard step 2: depth, bottom time and condition tags.
func (a *App) StepConditions(ctx context.Context) error {
	rec, err := a.drafts.Load(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	var patch models.DraftPatch
	if patch.Depth, err = a.askText("- Max depth (m)", rec.Depth); err != nil {
		return err
	}
	if patch.BottomTime, err = a.askText("- Bottom time (min)", rec.BottomTime); err != nil {
		return err
	}
	if patch.Weather, err = a.askChoice("- Weather", weatherTags, rec.Weather); err != nil {
		return err
	}
	if patch.Water, err = a.askChoice("- Water", waterTags, rec.Water); err != nil {
		return err
	}
	if patch.Visibility, err = a.askChoice("- Visibility", visTags, rec.Visibility); err != nil {
		return err
	}
	if patch.Waves, err = a.askChoice("- Waves", waveTags, rec.Waves); err != nil {
		return err
	}
	if patch.Current, err = a.askChoice("- Current", currentTags, rec.Current); err != nil {
		return err
	}

	return a.saveStep(ctx, patch, "conditions")
}

// StepExposure is wizard step 3: temperatures, suit and ballast.
func (a *App) StepExposure(ctx context.Context) error {
	rec, err := a.drafts.Load(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	var patch models.DraftPatch
	if patch.AirTemp, err = a.askText("- Air temperature (C)", rec.AirTemp); err != nil {
		return err
	}
	if patch.SurfaceTemp, err = a.askText("- Surface temperature (C)", rec.SurfaceTemp); err != nil {
		return err
	}
	if patch.BottomTemp, err = a.askText("- Bottom temperature (C)", rec.BottomTemp); err != nil {
		return err
	}
	if patch.Suit, err = a.askChoice("- Suit", suitTypes, rec.Suit); err != nil {
		return err
	}
	if patch.Ballast, err = a.askText("- Ballast weight (kg)", rec.Ballast); err != nil {
		return err
	}

	return a.saveStep(ctx, patch, "exposure")
}

// StepCylinder is wizard step 4: cylinder, gas and extra equipment.
func (a *App) StepCylinder(ctx context.Context) error {
	rec, err := a.drafts.Load(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	var patch models.DraftPatch
	if patch.CylinderMaterial, err = a.askChoice("- Cylinder material", cylMats, rec.CylinderMaterial); err != nil {
		return err
	}
	if patch.CylinderSize, err = a.askText("- Cylinder size (e.g. 12L)", rec.CylinderSize); err != nil {
		return err
	}
	if patch.GasMixture, err = a.askChoice("- Gas mixture", gasMixes, rec.GasMixture); err != nil {
		return err
	}
	if patch.InitialPressure, err = a.askText("- Initial pressure (bar)", rec.InitialPressure); err != nil {
		return err
	}
	if patch.FinalPressure, err = a.askText("- Final pressure (bar)", rec.FinalPressure); err != nil {
		return err
	}

	// Equipment tags come in as one line and replace the stored list.
	line, err := GetSimpleText(a.reader,
		"- Extra equipment, comma-separated ("+strings.Join(equipTags, ", ")+")", a.out)
	if err != nil {
		return err
	}
	if line != "" {
		var tags models.TagSet
		for _, tag := range strings.Split(line, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags.Add(tag)
			}
		}
		items := tags.Items()
		patch.Equipment = &items
	}
	if patch.EquipmentOther, err = a.askText("- Other equipment", rec.EquipmentOther); err != nil {
		return err
	}

	return a.saveStep(ctx, patch, "equipment")
}

// StepReview is the final wizard step: rating, difficulty and notes are kept
// in memory only, photos are picked, and the whole draft is submitted.
func (a *App) StepReview(ctx context.Context) error {
	var final services.FinalFields

	ratingLine, err := GetSimpleText(a.reader, "- Rating 1-5 (optional)", a.out)
	if err != nil {
		return err
	}
	if n, convErr := strconv.Atoi(ratingLine); convErr == nil && n >= 1 && n <= 5 {
		final.Rating = &n
	}

	diff, err := GetChoice(a.reader, "- Difficulty", diffLabels, a.out)
	if err != nil {
		return err
	}
	final.Difficulty = diff

	if final.Notes, err = GetMultiline(a.reader, "- Notes", a.out); err != nil {
		return err
	}

	photos, err := GetPaths(a.reader, "- Photo files, comma-separated (optional)", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetSimpleText(a.reader, "Submit the dive log now? (y/n)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
		printlnFn("Not submitted; the draft is saved")
		return nil
	}

	rec, err := a.drafts.Load(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if err := a.submit.Submit(ctx, rec, final, photos); err != nil {
		var ve *services.ValidationError
		var ae *services.AttachmentReadError
		switch {
		case errors.As(err, &ve):
			printlnFn("The log is missing required fields:")
			for _, field := range ve.Missing {
				printlnFn("  -", field)
			}
			printlnFn("Fill them in with log1/log2 and submit again")
		case errors.As(err, &ae):
			printlnFn("Could not read photo", ae.Path, "- remove or replace it and retry")
		default:
			printlnFn("Submission failed:", err.Error())
			printlnFn("Your draft is saved; submit again once the problem is resolved")
		}
		return err
	}

	printlnFn("Dive log submitted!")
	return nil
}

// ShowDraft prints the draft as it currently stands.
func (a *App) ShowDraft(ctx context.Context) error {
	rec, err := a.drafts.Load(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if rec.IsEmpty() {
		printlnFn("No dive log in progress")
		return nil
	}

	printField := func(label, v string) {
		if v != "" {
			printlnFn("  "+label+":", v)
		}
	}
	printlnFn("Dive log in progress:")
	printField("title", rec.Title)
	printField("site", rec.SiteName)
	printField("date", rec.Date)
	printField("type", rec.DiveType)
	printField("depth", rec.Depth)
	printField("bottom time", rec.BottomTime)
	printField("weather", rec.Weather)
	printField("water", rec.Water)
	printField("visibility", rec.Visibility)
	printField("waves", rec.Waves)
	printField("current", rec.Current)
	printField("air temp", rec.AirTemp)
	printField("surface temp", rec.SurfaceTemp)
	printField("bottom temp", rec.BottomTemp)
	printField("suit", rec.Suit)
	printField("ballast", rec.Ballast)
	printField("cylinder", rec.CylinderMaterial)
	printField("cylinder size", rec.CylinderSize)
	printField("gas", rec.GasMixture)
	printField("initial pressure", rec.InitialPressure)
	printField("final pressure", rec.FinalPressure)
	printField("equipment", strings.Join(rec.Equipment, ", "))
	printField("other equipment", rec.EquipmentOther)
	return nil
}

// DiscardDraft clears the draft after confirmation.
func (a *App) DiscardDraft(ctx context.Context) error {
	confirm, err := GetSimpleText(a.reader, "Discard the dive log in progress? (y/n)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
		return nil
	}
	if err := a.drafts.Clear(ctx); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Draft discarded")
	return nil
}

func (a *App) saveStep(ctx context.Context, patch models.DraftPatch, step string) error {
	if _, err := a.drafts.Save(ctx, patch); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Saved (" + step + ")")
	return nil
}
