package models

// Difficulty is the fixed three-bucket difficulty scale used by the backend.
type Difficulty string

const (
	DifficultyLow      Difficulty = "LOW"
	DifficultyModerate Difficulty = "MODERATE"
	DifficultyHigh     Difficulty = "HIGH"
)

// Attachment is a photo in its wire form: content type plus base64 payload.
type Attachment struct {
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// DiveLogPayload is the full dive-log record sent to POST /api/diveLogs.
// It is assembled once at submission time from the draft, the final wizard
// step's fields and the encoded attachments; it is never stored locally.
type DiveLogPayload struct {
	Title        string `json:"title"`
	DivingSpotID string `json:"divingSpotId,omitempty"`
	SiteName     string `json:"siteName,omitempty"`
	Date         string `json:"date"`
	DiveType     string `json:"diveType"`

	Depth               float64 `json:"depth"`
	BottomTimeInMinutes float64 `json:"bottomTimeInMinutes"`

	Weather    string `json:"weather,omitempty"`
	Water      string `json:"waterCondition,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	Waves      string `json:"waves,omitempty"`
	Current    string `json:"current,omitempty"`

	AirTemperature     *float64 `json:"airTemperature,omitempty"`
	SurfaceTemperature *float64 `json:"surfaceTemperature,omitempty"`
	BottomTemperature  *float64 `json:"bottomTemperature,omitempty"`

	Suit          string   `json:"suit,omitempty"`
	BallastWeight *float64 `json:"ballastWeight,omitempty"`

	CylinderMaterial string   `json:"cylinderMaterial,omitempty"`
	CylinderSize     string   `json:"cylinderSize,omitempty"`
	GasMixture       string   `json:"gasMixture,omitempty"`
	InitialPressure  *float64 `json:"initialPressure,omitempty"`
	FinalPressure    *float64 `json:"finalPressure,omitempty"`

	// UsedGas is derived from the two pressure readings and is never
	// entered directly.
	UsedGas *float64 `json:"usedGas,omitempty"`

	AdditionalEquipment []string `json:"additionalEquipment,omitempty"`
	EquipmentOther      string   `json:"equipmentOther,omitempty"`

	Rating          *int       `json:"rating,omitempty"`
	DifficultyLevel Difficulty `json:"difficultyLevel,omitempty"`
	Notes           string     `json:"notes,omitempty"`

	Photos []Attachment `json:"photos,omitempty"`
}

// SiteReviewPayload is the reduced projection of a dive log posted as a site
// review. It is only built when a site id could be resolved and the log
// carries at least one of rating, notes or photos.
type SiteReviewPayload struct {
	DivingSpotID    string       `json:"divingSpotId"`
	Rating          *int         `json:"rating,omitempty"`
	DifficultyLevel Difficulty   `json:"difficultyLevel,omitempty"`
	Visibility      string       `json:"visibility,omitempty"`
	Comment         string       `json:"comment,omitempty"`
	Photos          []Attachment `json:"photos,omitempty"`
}
