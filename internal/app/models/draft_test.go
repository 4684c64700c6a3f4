package models

import (
	"labdash-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func labMethods() []string {
	return []string{MethodTestkit, MethodWalkIn}
}

func labOptions() []MarkerOption {
	return []MarkerOption{
		{ID: "m1", Name: "Hemoglobin A1c"},
		{ID: "m2", Name: "TSH"},
		{ID: "m3", Name: "Vitamin D"},
	}
}

func loadedDraft(t *testing.T, kind string) *Draft {
	t.Helper()
	draft := NewDraft("d1", kind)
	needsFetch := draft.SelectLab("lab-a", labMethods())
	assert.True(t, needsFetch)
	assert.True(t, draft.ApplyMarkerList("lab-a", labOptions()))
	return draft
}

func TestDraft_SelectLab(t *testing.T) {
	t.Run("Choosing a lab requires a marker fetch", func(t *testing.T) {
		draft := NewDraft("d1", constvars.DraftKindTemplate)

		needsFetch := draft.SelectLab("lab-a", labMethods())

		assert.True(t, needsFetch)
		assert.Equal(t, "lab-a", draft.LabID)
		assert.Equal(t, "lab-a", draft.MarkerFetchKey)
		assert.Equal(t, labMethods(), draft.LabMethods)
	})

	t.Run("Switching labs clears method and marker state", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)
		assert.True(t, draft.SelectMethod(MethodTestkit))
		assert.True(t, draft.ToggleMarker("m1"))
		assert.True(t, draft.ToggleMarker("m2"))

		needsFetch := draft.SelectLab("lab-b", []string{MethodAtHomePhlebotomy})

		assert.True(t, needsFetch)
		assert.Equal(t, "lab-b", draft.LabID)
		assert.Empty(t, draft.Method)
		assert.Empty(t, draft.SelectedMarkerIDs)
		assert.Empty(t, draft.MarkerOptions)
		assert.False(t, draft.MarkersLoaded)
	})

	t.Run("Re-selecting the current lab keeps everything", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)
		assert.True(t, draft.SelectMethod(MethodTestkit))
		assert.True(t, draft.ToggleMarker("m1"))

		needsFetch := draft.SelectLab("lab-a", labMethods())

		assert.False(t, needsFetch)
		assert.Equal(t, MethodTestkit, draft.Method)
		assert.Equal(t, []string{"m1"}, draft.SelectedMarkerIDs)
		assert.True(t, draft.MarkersLoaded)
	})

	t.Run("Clearing the lab clears everything without a fetch", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)
		assert.True(t, draft.SelectMethod(MethodTestkit))
		assert.True(t, draft.ToggleMarker("m1"))

		needsFetch := draft.SelectLab("", nil)

		assert.False(t, needsFetch)
		assert.Empty(t, draft.LabID)
		assert.Empty(t, draft.LabMethods)
		assert.Empty(t, draft.Method)
		assert.Empty(t, draft.SelectedMarkerIDs)
		assert.Empty(t, draft.MarkerFetchKey)
		assert.Equal(t, DraftStateEmpty, draft.State())
	})
}

func TestDraft_ApplyMarkerList(t *testing.T) {
	t.Run("List fetched for the current lab is applied", func(t *testing.T) {
		draft := NewDraft("d1", constvars.DraftKindTemplate)
		draft.SelectLab("lab-a", labMethods())

		assert.True(t, draft.ApplyMarkerList("lab-a", labOptions()))
		assert.True(t, draft.MarkersLoaded)
		assert.Len(t, draft.MarkerOptions, 3)
	})

	t.Run("List for a lab no longer selected is discarded", func(t *testing.T) {
		draft := NewDraft("d1", constvars.DraftKindTemplate)
		draft.SelectLab("lab-a", labMethods())
		draft.SelectLab("lab-b", []string{MethodAtHomePhlebotomy})

		assert.False(t, draft.ApplyMarkerList("lab-a", labOptions()))
		assert.False(t, draft.MarkersLoaded)
		assert.Empty(t, draft.MarkerOptions)
	})

	t.Run("List arriving after the lab was cleared is discarded", func(t *testing.T) {
		draft := NewDraft("d1", constvars.DraftKindTemplate)
		draft.SelectLab("lab-a", labMethods())
		draft.SelectLab("", nil)

		assert.False(t, draft.ApplyMarkerList("lab-a", labOptions()))
		assert.False(t, draft.MarkersLoaded)
	})
}

func TestDraft_SelectMethod(t *testing.T) {
	t.Run("Method in the lab's supported set is accepted", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)

		assert.True(t, draft.SelectMethod(MethodWalkIn))
		assert.Equal(t, MethodWalkIn, draft.Method)
	})

	t.Run("Method outside the supported set is rejected untouched", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)
		assert.True(t, draft.SelectMethod(MethodTestkit))

		assert.False(t, draft.SelectMethod(MethodAtHomePhlebotomy))
		assert.Equal(t, MethodTestkit, draft.Method)
	})

	t.Run("No method without a lab", func(t *testing.T) {
		draft := NewDraft("d1", constvars.DraftKindTemplate)

		assert.False(t, draft.SelectMethod(MethodTestkit))
		assert.Empty(t, draft.Method)
	})
}

func TestDraft_ToggleMarker(t *testing.T) {
	t.Run("Toggle adds then removes", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)

		assert.True(t, draft.ToggleMarker("m1"))
		assert.True(t, draft.HasMarker("m1"))

		assert.True(t, draft.ToggleMarker("m1"))
		assert.False(t, draft.HasMarker("m1"))
	})

	t.Run("Unknown marker is rejected", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)

		assert.False(t, draft.ToggleMarker("m9"))
		assert.Empty(t, draft.SelectedMarkerIDs)
	})

	t.Run("Unavailable before options are loaded", func(t *testing.T) {
		draft := NewDraft("d1", constvars.DraftKindTemplate)
		draft.SelectLab("lab-a", labMethods())

		assert.False(t, draft.ToggleMarker("m1"))
	})
}

func completePatient() PatientDetails {
	return PatientDetails{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1990-12-10",
		Gender:      "female",
		PhoneNumber: "+15551234567",
		Email:       "ada@example.com",
		StreetLine:  "1 Analytical Way",
		City:        "London",
		State:       "LDN",
		Zip:         "12345",
		Country:     "GB",
	}
}

func TestDraft_Valid(t *testing.T) {
	t.Run("Template draft needs lab method markers name and description", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)
		assert.False(t, draft.Valid())

		draft.SelectMethod(MethodTestkit)
		draft.ToggleMarker("m1")
		assert.False(t, draft.Valid())

		draft.SetDetails("Thyroid Panel", "Quarterly thyroid check", "")
		assert.True(t, draft.Valid())
		assert.Equal(t, DraftStateValid, draft.State())
	})

	t.Run("Order draft additionally needs template patient and authorization", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindOrder)
		draft.SelectMethod(MethodTestkit)
		draft.ToggleMarker("m1")
		assert.False(t, draft.Valid())

		draft.SetTemplateSelection("tmpl-1")
		assert.False(t, draft.Valid())

		draft.SetPatient("user-1", completePatient(), false)
		assert.False(t, draft.Valid())

		draft.SetPatient("user-1", completePatient(), true)
		assert.True(t, draft.Valid())
	})

	t.Run("Switching labs invalidates a finished draft", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindTemplate)
		draft.SelectMethod(MethodTestkit)
		draft.ToggleMarker("m1")
		draft.SetDetails("Thyroid Panel", "Quarterly thyroid check", "")
		assert.True(t, draft.Valid())

		draft.SelectLab("lab-b", []string{MethodAtHomePhlebotomy})

		assert.False(t, draft.Valid())
	})

	t.Run("One blank patient field blocks submission", func(t *testing.T) {
		draft := loadedDraft(t, constvars.DraftKindOrder)
		draft.SelectMethod(MethodTestkit)
		draft.ToggleMarker("m1")
		draft.SetTemplateSelection("tmpl-1")

		patient := completePatient()
		patient.Zip = "   "
		draft.SetPatient("user-1", patient, true)

		assert.False(t, draft.Valid())
	})
}

func TestDraft_State(t *testing.T) {
	draft := NewDraft("d1", constvars.DraftKindTemplate)
	assert.Equal(t, DraftStateEmpty, draft.State())

	draft.SelectLab("lab-a", labMethods())
	assert.Equal(t, DraftStateLabChosen, draft.State())

	draft.ApplyMarkerList("lab-a", labOptions())
	assert.Equal(t, DraftStateBiomarkersLoaded, draft.State())
}

func TestDraft_Reset(t *testing.T) {
	draft := loadedDraft(t, constvars.DraftKindOrder)
	draft.SelectMethod(MethodTestkit)
	draft.ToggleMarker("m1")
	draft.SetTemplateSelection("tmpl-1")
	draft.SetPatient("user-1", completePatient(), true)
	createdAt := draft.CreatedAt

	draft.Reset()

	assert.Equal(t, "d1", draft.ID)
	assert.Equal(t, constvars.DraftKindOrder, draft.Kind)
	assert.Equal(t, createdAt, draft.CreatedAt)
	assert.Empty(t, draft.LabID)
	assert.Empty(t, draft.SelectedMarkerIDs)
	assert.Empty(t, draft.SelectedTemplateID)
	assert.Equal(t, "self", draft.Payor)
	assert.Equal(t, DraftStateEmpty, draft.State())
}
