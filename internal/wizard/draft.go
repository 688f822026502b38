package wizard

import (
	"math"
	"strconv"
	"strings"
	"time"

	"servicehub_backend/internal/models"
	"servicehub_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// Step is the wizard's position. Advancing past a step is gated; going
// back never loses data entered on later steps.
type Step int

const (
	StepDetails        Step = 1
	StepLocationBudget Step = 2
	StepTimeline       Step = 3
)

const defaultState = "Illinois"

// Draft accumulates a job posting across the three wizard steps. One draft
// is owned by exactly one user; nothing else mutates it. A non-empty JobID
// means the wizard runs in edit mode and submission updates that job.
type Draft struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	JobID  string `json:"jobId,omitempty"`
	Step   Step   `json:"step"`

	// Step 1 — details.
	Title             string `json:"title"`
	ServiceCategory   string `json:"serviceCategory"`
	ServiceType       string `json:"serviceType"`
	Description       string `json:"description"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	ContactPreference string `json:"contactPreference"` // email | phone
	PhoneNumber       string `json:"phoneNumber"`

	// Step 2 — location and budget. Budget stays free-text until it is
	// validated; the canonical format is a plain decimal, dot separator,
	// no currency symbol.
	Street     string            `json:"street"`
	City       string            `json:"city"`
	State      string            `json:"state"`
	ZipCode    string            `json:"zipCode"`
	Budget     string            `json:"budget"`
	BudgetType models.BudgetType `json:"budgetType"`

	// Step 3 — timeline and preferences.
	Deadline     *time.Time         `json:"deadline,omitempty"`
	Priority     models.JobPriority `json:"priority"`
	IsRemote     bool               `json:"isRemote"`
	Requirements []string           `json:"requirements"`
	Tags         []string           `json:"tags"`

	Images []Attachment `json:"images"`

	// LastError keeps the most recent gate or submission failure so a
	// failed submit returns to the current step with the message intact.
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewDraft starts a create-mode draft at step 1 with the form defaults.
func NewDraft(userID string) *Draft {
	now := time.Now()
	return &Draft{
		ID:                uuid.NewString(),
		UserID:            userID,
		Step:              StepDetails,
		ContactPreference: "email",
		State:             defaultState,
		BudgetType:        models.BudgetTypeFixed,
		Priority:          models.JobPriorityMedium,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// DraftFromJob starts an edit-mode draft pre-filled from an existing job.
// It enters at step 1 like a fresh draft, but with the job's fields mapped
// back onto the form (category → serviceCategory, subcategory →
// serviceType, location split into its address parts).
func DraftFromJob(userID string, job *models.Job, firstName, lastName, phone string) *Draft {
	d := NewDraft(userID)
	d.JobID = job.ID
	d.Title = job.Title
	d.ServiceCategory = job.Category
	d.ServiceType = job.Subcategory
	d.Description = job.Description
	d.FirstName = firstName
	d.LastName = lastName
	d.PhoneNumber = phone
	d.Budget = strconv.FormatFloat(job.Budget, 'f', -1, 64)
	if job.BudgetType != "" {
		d.BudgetType = job.BudgetType
	}
	if job.Priority != "" {
		d.Priority = job.Priority
	}
	d.IsRemote = job.IsRemote
	d.Deadline = job.Deadline
	d.Street, d.City, d.State, d.ZipCode = ParseLocation(job.Location)
	return d
}

// SelectCategory applies a category picker selection, setting both
// serviceCategory and serviceType. Selections outside the static catalog
// are rejected.
func (d *Draft) SelectCategory(category, serviceType string) error {
	if !CatalogContains(category, serviceType) {
		return apperrors.ErrUnknownCategory
	}
	d.ServiceCategory = category
	d.ServiceType = serviceType
	d.touch()
	return nil
}

// ValidateStep runs the advance gate for the given step. Step 3 has no
// gate: its primary action is submission.
func (d *Draft) ValidateStep(step Step) error {
	switch step {
	case StepDetails:
		errs := map[string]string{}
		requireField(errs, "title", d.Title)
		requireField(errs, "serviceCategory", d.ServiceCategory)
		requireField(errs, "serviceType", d.ServiceType)
		requireField(errs, "description", d.Description)
		requireField(errs, "firstName", d.FirstName)
		requireField(errs, "lastName", d.LastName)
		if d.ContactPreference == "phone" && strings.TrimSpace(d.PhoneNumber) == "" {
			errs["phoneNumber"] = "Phone number is required for phone contact"
		}
		if len(errs) > 0 {
			return apperrors.ValidationError(errs)
		}
		return nil
	case StepLocationBudget:
		errs := map[string]string{}
		requireField(errs, "street", d.Street)
		requireField(errs, "city", d.City)
		requireField(errs, "zipCode", d.ZipCode)
		if strings.TrimSpace(d.Budget) != "" {
			if _, err := ParseBudget(d.Budget); err != nil {
				errs["budget"] = "Budget must be a non-negative number"
			}
		}
		if len(errs) > 0 {
			return apperrors.ValidationError(errs)
		}
		return nil
	case StepTimeline:
		return nil
	default:
		return apperrors.ErrInvalidOperation("wizard", "Unknown wizard step")
	}
}

// Advance moves to the next step if the current step's gate passes. On a
// gate failure the step is unchanged and the error is recorded on the
// draft.
func (d *Draft) Advance() error {
	if d.Step >= StepTimeline {
		return apperrors.ErrInvalidOperation("wizard", "Already on the final step; submit instead")
	}
	if err := d.ValidateStep(d.Step); err != nil {
		d.LastError = err.Error()
		return err
	}
	d.Step++
	d.LastError = ""
	d.touch()
	return nil
}

// Back returns one step. From step 1 it reports exited=true: the wizard is
// left entirely. Data entered on later steps survives.
func (d *Draft) Back() (exited bool) {
	if d.Step <= StepDetails {
		return true
	}
	d.Step--
	d.LastError = ""
	d.touch()
	return false
}

// ValidateSubmit re-checks the submission precondition independently of
// the step gates: title, description and budget must all be present.
func (d *Draft) ValidateSubmit() error {
	errs := map[string]string{}
	requireField(errs, "title", d.Title)
	requireField(errs, "description", d.Description)
	if strings.TrimSpace(d.Budget) == "" {
		errs["budget"] = "This field is required"
	} else if _, err := ParseBudget(d.Budget); err != nil {
		errs["budget"] = "Budget must be a non-negative number"
	}
	if len(errs) > 0 {
		return apperrors.ValidationError(errs)
	}
	return nil
}

// JobRequest is the payload a completed draft builds. In create mode JobID
// is empty; in edit mode it keys the update. Both modes converge on the
// same success path afterwards.
type JobRequest struct {
	JobID        string
	Title        string
	Description  string
	Category     string
	Subcategory  string
	Budget       float64
	BudgetType   models.BudgetType
	Priority     models.JobPriority
	Location     string
	IsRemote     bool
	Deadline     *time.Time
	Requirements []string
	Tags         []string
	Images       []string
}

// BuildRequest validates the submission precondition and maps the draft to
// a job create/update payload.
func (d *Draft) BuildRequest() (*JobRequest, error) {
	if err := d.ValidateSubmit(); err != nil {
		d.LastError = err.Error()
		return nil, err
	}
	budget, err := ParseBudget(d.Budget)
	if err != nil {
		d.LastError = err.Error()
		return nil, err
	}
	images := make([]string, 0, len(d.Images))
	for _, img := range d.Images {
		images = append(images, img.PreviewRef)
	}
	d.LastError = ""
	return &JobRequest{
		JobID:        d.JobID,
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.ServiceCategory,
		Subcategory:  d.ServiceType,
		Budget:       budget,
		BudgetType:   d.BudgetType,
		Priority:     d.Priority,
		Location:     FormatLocation(d.Street, d.City, d.State, d.ZipCode),
		IsRemote:     d.IsRemote,
		Deadline:     d.Deadline,
		Requirements: d.Requirements,
		Tags:         d.Tags,
		Images:       images,
	}, nil
}

// RecordFailure keeps the draft on its current step after a failed
// submission; nothing entered is discarded.
func (d *Draft) RecordFailure(err error) {
	d.LastError = err.Error()
	d.touch()
}

func (d *Draft) touch() {
	d.UpdatedAt = time.Now()
}

// ParseBudget parses the free-text budget field into a validated
// non-negative amount. Non-numeric input is a validation error, never
// silently accepted. ParseFloat also accepts "NaN" and "Inf", which would
// poison the stored job and every JSON rendering of it, so non-finite
// values are rejected too.
func ParseBudget(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, apperrors.ErrInvalidBudget
	}
	return v, nil
}

// FormatLocation joins the address parts into the single location string
// stored on the job: "street, city, state zip".
func FormatLocation(street, city, state, zip string) string {
	var parts []string
	if street = strings.TrimSpace(street); street != "" {
		parts = append(parts, street)
	}
	if city = strings.TrimSpace(city); city != "" {
		parts = append(parts, city)
	}
	tail := strings.TrimSpace(strings.TrimSpace(state) + " " + strings.TrimSpace(zip))
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

// ParseLocation splits a stored location string back into its address
// parts for edit-mode pre-fill. It is the inverse of FormatLocation for
// well-formed values.
func ParseLocation(location string) (street, city, state, zip string) {
	parts := strings.Split(location, ", ")
	if len(parts) > 0 {
		street = parts[0]
	}
	if len(parts) > 1 {
		city = parts[1]
	}
	if len(parts) > 2 {
		tail := strings.Fields(parts[2])
		if len(tail) > 1 {
			state = strings.Join(tail[:len(tail)-1], " ")
			zip = tail[len(tail)-1]
		} else if len(tail) == 1 {
			// A lone tail token is a zip when it is all digits (the
			// state was never set), a state otherwise.
			if isZipToken(tail[0]) {
				zip = tail[0]
			} else {
				state = tail[0]
			}
		}
	}
	return street, city, state, zip
}

func isZipToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func requireField(errs map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		errs[name] = "This field is required"
	}
}
