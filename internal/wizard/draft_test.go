package wizard

import (
	"testing"
	"time"

	"servicehub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStep1(d *Draft) {
	d.Title = "Fix leaking kitchen sink"
	d.ServiceCategory = "Home Maintenance and Repairs"
	d.ServiceType = "Plumbing"
	d.Description = "The sink drips constantly"
	d.FirstName = "Pat"
	d.LastName = "Doe"
}

func validStep2(d *Draft) {
	d.Street = "1 Elm St"
	d.City = "Springfield"
	d.ZipCode = "00501"
	d.Budget = "150"
}

func TestNewDraftDefaults(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, StepDetails, d.Step)
	assert.Equal(t, "email", d.ContactPreference)
	assert.Equal(t, "Illinois", d.State)
	assert.Equal(t, models.BudgetTypeFixed, d.BudgetType)
	assert.Equal(t, models.JobPriorityMedium, d.Priority)
	assert.Empty(t, d.JobID)
}

func TestAdvanceGateStep1(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")

	err := d.Advance()
	require.Error(t, err)
	assert.Equal(t, StepDetails, d.Step)
	assert.NotEmpty(t, d.LastError)

	validStep1(d)
	require.NoError(t, d.Advance())
	assert.Equal(t, StepLocationBudget, d.Step)
	assert.Empty(t, d.LastError)
}

func TestAdvanceGateStep1PhonePreference(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	validStep1(d)
	d.ContactPreference = "phone"

	// Phone contact requires a phone number; email contact does not.
	err := d.Advance()
	require.Error(t, err)
	assert.Equal(t, StepDetails, d.Step)

	d.PhoneNumber = "555-0100"
	require.NoError(t, d.Advance())
	assert.Equal(t, StepLocationBudget, d.Step)
}

func TestAdvanceGateStep2(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	validStep1(d)
	require.NoError(t, d.Advance())

	err := d.Advance()
	require.Error(t, err)
	assert.Equal(t, StepLocationBudget, d.Step)

	validStep2(d)
	d.Budget = "abc" // optional at step 2, but must parse if present
	err = d.Advance()
	require.Error(t, err)
	assert.Equal(t, StepLocationBudget, d.Step)

	d.Budget = ""
	require.NoError(t, d.Advance())
	assert.Equal(t, StepTimeline, d.Step)
}

func TestAdvancePastFinalStep(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	validStep1(d)
	validStep2(d)
	require.NoError(t, d.Advance())
	require.NoError(t, d.Advance())

	err := d.Advance()
	assert.Error(t, err)
	assert.Equal(t, StepTimeline, d.Step)
}

func TestBackKeepsLaterStepData(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	validStep1(d)
	validStep2(d)
	require.NoError(t, d.Advance())
	require.NoError(t, d.Advance())
	require.Equal(t, StepTimeline, d.Step)

	exited := d.Back()
	assert.False(t, exited)
	assert.Equal(t, StepLocationBudget, d.Step)
	assert.Equal(t, "1 Elm St", d.Street)
	assert.Equal(t, "150", d.Budget)

	exited = d.Back()
	assert.False(t, exited)
	assert.Equal(t, StepDetails, d.Step)

	// Backing out of step 1 exits the wizard.
	assert.True(t, d.Back())
}

func TestValidateSubmitRequiresBudget(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	validStep1(d)

	// Budget is optional at the step 2 gate but required at submit.
	err := d.ValidateSubmit()
	require.Error(t, err)

	d.Budget = "150"
	assert.NoError(t, d.ValidateSubmit())
}

func TestBuildRequestMapsDraft(t *testing.T) {
	t.Parallel()

	deadline := time.Now().Add(72 * time.Hour)
	d := NewDraft("user-1")
	validStep1(d)
	validStep2(d)
	d.Deadline = &deadline
	d.Requirements = []string{"licensed"}
	d.Tags = []string{"plumbing"}
	d.Images = []Attachment{{ID: "img-1", Name: "sink.jpg", PreviewRef: "/previews/sink.jpg"}}

	req, err := d.BuildRequest()
	require.NoError(t, err)

	assert.Empty(t, req.JobID)
	assert.Equal(t, "Fix leaking kitchen sink", req.Title)
	assert.Equal(t, "Home Maintenance and Repairs", req.Category)
	assert.Equal(t, "Plumbing", req.Subcategory)
	assert.Equal(t, 150.0, req.Budget)
	assert.Equal(t, "1 Elm St, Springfield, Illinois 00501", req.Location)
	assert.Equal(t, []string{"/previews/sink.jpg"}, req.Images)
	assert.Empty(t, d.LastError)
}

func TestBuildRequestFailureRecordsError(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	validStep1(d)
	// No budget: submission precondition fails.

	req, err := d.BuildRequest()
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.NotEmpty(t, d.LastError)
}

func TestDraftFromJobPrefill(t *testing.T) {
	t.Parallel()

	deadline := time.Now().Add(24 * time.Hour)
	job := &models.Job{
		Title:       "Repaint living room",
		Category:    "Home Maintenance and Repairs",
		Subcategory: "Painting",
		Description: "Two coats, eggshell",
		Budget:      600,
		BudgetType:  models.BudgetTypeFixed,
		Priority:    models.JobPriorityLow,
		Location:    "2 Oak Ave, Springfield, Illinois 00502",
		Deadline:    &deadline,
	}
	job.ID = "job-9"

	d := DraftFromJob("user-1", job, "Pat", "Doe", "555-0100")

	assert.Equal(t, "job-9", d.JobID)
	assert.Equal(t, StepDetails, d.Step)
	assert.Equal(t, "Repaint living room", d.Title)
	assert.Equal(t, "Home Maintenance and Repairs", d.ServiceCategory)
	assert.Equal(t, "Painting", d.ServiceType)
	assert.Equal(t, "600", d.Budget)
	assert.Equal(t, "2 Oak Ave", d.Street)
	assert.Equal(t, "Springfield", d.City)
	assert.Equal(t, "Illinois", d.State)
	assert.Equal(t, "00502", d.ZipCode)

	// The round trip back through BuildRequest keys the update.
	req, err := d.BuildRequest()
	require.NoError(t, err)
	assert.Equal(t, "job-9", req.JobID)
	assert.Equal(t, "2 Oak Ave, Springfield, Illinois 00502", req.Location)
}

func TestSelectCategory(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")

	require.NoError(t, d.SelectCategory("Cleaning Services", "Deep Cleaning"))
	assert.Equal(t, "Cleaning Services", d.ServiceCategory)
	assert.Equal(t, "Deep Cleaning", d.ServiceType)

	// Type from another category is not a valid selection.
	err := d.SelectCategory("Cleaning Services", "Plumbing")
	assert.Error(t, err)
	assert.Equal(t, "Cleaning Services", d.ServiceCategory)
	assert.Equal(t, "Deep Cleaning", d.ServiceType)
}

func TestParseBudget(t *testing.T) {
	t.Parallel()

	v, err := ParseBudget("150")
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)

	v, err = ParseBudget(" 99.50 ")
	require.NoError(t, err)
	assert.Equal(t, 99.5, v)

	_, err = ParseBudget("abc")
	assert.Error(t, err)

	_, err = ParseBudget("-5")
	assert.Error(t, err)

	// ParseFloat parses these, but they are not valid budgets.
	for _, s := range []string{"NaN", "Inf", "+Inf", "-Inf", "inf"} {
		_, err = ParseBudget(s)
		assert.Error(t, err, "budget %q must be rejected", s)
	}

	v, err = ParseBudget("0")
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestLocationRoundTrip(t *testing.T) {
	t.Parallel()

	loc := FormatLocation("1 Elm St", "Springfield", "Illinois", "00501")
	assert.Equal(t, "1 Elm St, Springfield, Illinois 00501", loc)

	street, city, state, zip := ParseLocation(loc)
	assert.Equal(t, "1 Elm St", street)
	assert.Equal(t, "Springfield", city)
	assert.Equal(t, "Illinois", state)
	assert.Equal(t, "00501", zip)

	// Multi-word state.
	loc = FormatLocation("5 Pine Rd", "Albany", "New York", "12201")
	street, city, state, zip = ParseLocation(loc)
	assert.Equal(t, "New York", state)
	assert.Equal(t, "12201", zip)

	// No state: the lone numeric tail token is the zip, not a state.
	loc = FormatLocation("1 Elm St", "Springfield", "", "00501")
	assert.Equal(t, "1 Elm St, Springfield, 00501", loc)
	street, city, state, zip = ParseLocation(loc)
	assert.Equal(t, "1 Elm St", street)
	assert.Equal(t, "Springfield", city)
	assert.Empty(t, state)
	assert.Equal(t, "00501", zip)

	// No zip: a lone non-numeric tail token is still the state.
	street, city, state, zip = ParseLocation("1 Elm St, Springfield, Illinois")
	assert.Equal(t, "Illinois", state)
	assert.Empty(t, zip)

	// Partial addresses don't panic and keep what they have.
	street, city, state, zip = ParseLocation("Springfield")
	assert.Equal(t, "Springfield", street)
	assert.Empty(t, city)
	assert.Empty(t, state)
	assert.Empty(t, zip)
}
