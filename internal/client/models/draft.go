package models

import "reflect"

// DraftRecord is the in-progress dive log accumulated across the wizard
// steps. Every field is optional at this layer; required fields are only
// enforced when the log is finally submitted. Numeric fields are kept as the
// raw strings the user typed and are coerced at submission time.
type DraftRecord struct {
	Title    string `json:"title,omitempty"`
	SiteName string `json:"siteName,omitempty"`
	SiteID   string `json:"siteId,omitempty"`
	Date     string `json:"date,omitempty"`
	DiveType string `json:"diveType,omitempty"`

	Depth      string `json:"depth,omitempty"`
	BottomTime string `json:"bottomTime,omitempty"`

	Weather    string `json:"weather,omitempty"`
	Water      string `json:"water,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	Waves      string `json:"waves,omitempty"`
	Current    string `json:"current,omitempty"`

	AirTemp     string `json:"airTemp,omitempty"`
	SurfaceTemp string `json:"surfaceTemp,omitempty"`
	BottomTemp  string `json:"bottomTemp,omitempty"`
	Suit        string `json:"suit,omitempty"`
	Ballast     string `json:"ballast,omitempty"`

	CylinderMaterial string `json:"cylinderMaterial,omitempty"`
	CylinderSize     string `json:"cylinderSize,omitempty"`
	GasMixture       string `json:"gasMixture,omitempty"`
	InitialPressure  string `json:"initialPressure,omitempty"`
	FinalPressure    string `json:"finalPressure,omitempty"`

	Equipment      []string `json:"equipment,omitempty"`
	EquipmentOther string   `json:"equipmentOther,omitempty"`
}

// DraftPatch is a partial update to a DraftRecord. Only non-nil fields are
// applied; each wizard step fills in just the fields it owns.
type DraftPatch struct {
	Title    *string
	SiteName *string
	SiteID   *string
	Date     *string
	DiveType *string

	Depth      *string
	BottomTime *string

	Weather    *string
	Water      *string
	Visibility *string
	Waves      *string
	Current    *string

	AirTemp     *string
	SurfaceTemp *string
	BottomTemp  *string
	Suit        *string
	Ballast     *string

	CylinderMaterial *string
	CylinderSize     *string
	GasMixture       *string
	InitialPressure  *string
	FinalPressure    *string

	Equipment      *[]string
	EquipmentOther *string
}

// Apply merges p into r field-wise: a non-nil patch field overwrites the
// stored value, everything else is left untouched. The merge is shallow,
// there is no per-element merging of the equipment list.
func (r DraftRecord) Apply(p DraftPatch) DraftRecord {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.SiteName != nil {
		r.SiteName = *p.SiteName
	}
	if p.SiteID != nil {
		r.SiteID = *p.SiteID
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.DiveType != nil {
		r.DiveType = *p.DiveType
	}
	if p.Depth != nil {
		r.Depth = *p.Depth
	}
	if p.BottomTime != nil {
		r.BottomTime = *p.BottomTime
	}
	if p.Weather != nil {
		r.Weather = *p.Weather
	}
	if p.Water != nil {
		r.Water = *p.Water
	}
	if p.Visibility != nil {
		r.Visibility = *p.Visibility
	}
	if p.Waves != nil {
		r.Waves = *p.Waves
	}
	if p.Current != nil {
		r.Current = *p.Current
	}
	if p.AirTemp != nil {
		r.AirTemp = *p.AirTemp
	}
	if p.SurfaceTemp != nil {
		r.SurfaceTemp = *p.SurfaceTemp
	}
	if p.BottomTemp != nil {
		r.BottomTemp = *p.BottomTemp
	}
	if p.Suit != nil {
		r.Suit = *p.Suit
	}
	if p.Ballast != nil {
		r.Ballast = *p.Ballast
	}
	if p.CylinderMaterial != nil {
		r.CylinderMaterial = *p.CylinderMaterial
	}
	if p.CylinderSize != nil {
		r.CylinderSize = *p.CylinderSize
	}
	if p.GasMixture != nil {
		r.GasMixture = *p.GasMixture
	}
	if p.InitialPressure != nil {
		r.InitialPressure = *p.InitialPressure
	}
	if p.FinalPressure != nil {
		r.FinalPressure = *p.FinalPressure
	}
	if p.Equipment != nil {
		r.Equipment = *p.Equipment
	}
	if p.EquipmentOther != nil {
		r.EquipmentOther = *p.EquipmentOther
	}
	return r
}

// IsEmpty reports whether nothing has been written to the draft yet.
func (r DraftRecord) IsEmpty() bool {
	if len(r.Equipment) > 0 {
		return false
	}
	r.Equipment = nil
	return reflect.DeepEqual(r, DraftRecord{})
}
