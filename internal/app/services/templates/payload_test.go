package templates

import (
	"labdash-service/internal/app/models"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/responses"
	"labdash-service/internal/pkg/vendordto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedTemplateDraft(t *testing.T) *models.Draft {
	t.Helper()
	draft := models.NewDraft("d1", constvars.DraftKindTemplate)
	draft.SelectLab("lab-a", []string{models.MethodTestkit, models.MethodWalkIn})
	require.True(t, draft.ApplyMarkerList("lab-a", []models.MarkerOption{
		{ID: "m1", Name: "Hemoglobin A1c"},
		{ID: "m2", Name: "TSH"},
	}))
	require.True(t, draft.SelectMethod(models.MethodTestkit))
	require.True(t, draft.ToggleMarker("m1"))
	require.True(t, draft.ToggleMarker("m2"))
	draft.SetDetails("Metabolic Panel", "Routine metabolic check", "")
	require.True(t, draft.Valid())
	return draft
}

func TestBuildCreatePayload(t *testing.T) {
	t.Run("Finished draft produces the vendor payload", func(t *testing.T) {
		draft := finishedTemplateDraft(t)

		payload, err := BuildCreatePayload(draft)

		require.NoError(t, err)
		assert.Equal(t, "Metabolic Panel", payload.Name)
		assert.Equal(t, "Routine metabolic check", payload.Description)
		assert.Equal(t, models.MethodTestkit, payload.Method)
		assert.Equal(t, []string{"m1", "m2"}, payload.MarkerIDs)
		assert.Equal(t, "lab-a", payload.LabID)
	})

	t.Run("Payload owns its marker id slice", func(t *testing.T) {
		draft := finishedTemplateDraft(t)

		payload, err := BuildCreatePayload(draft)
		require.NoError(t, err)

		payload.MarkerIDs[0] = "tampered"
		assert.Equal(t, []string{"m1", "m2"}, draft.SelectedMarkerIDs)
	})

	t.Run("Every missing ingredient blocks construction", func(t *testing.T) {
		breakages := map[string]func(*models.Draft){
			"no lab":         func(d *models.Draft) { d.SelectLab("", nil) },
			"no method":      func(d *models.Draft) { d.Method = "" },
			"foreign method": func(d *models.Draft) { d.Method = models.MethodAtHomePhlebotomy },
			"no markers":     func(d *models.Draft) { d.SelectedMarkerIDs = nil },
			"no name":        func(d *models.Draft) { d.Name = "" },
			"no description": func(d *models.Draft) { d.Description = "" },
			"order kind":     func(d *models.Draft) { d.Kind = constvars.DraftKindOrder },
		}

		for name, corrupt := range breakages {
			t.Run(name, func(t *testing.T) {
				draft := finishedTemplateDraft(t)
				corrupt(draft)

				payload, err := BuildCreatePayload(draft)

				assert.Error(t, err)
				assert.Nil(t, payload)
			})
		}
	})

	t.Run("Nil draft is rejected", func(t *testing.T) {
		payload, err := BuildCreatePayload(nil)
		assert.Error(t, err)
		assert.Nil(t, payload)
	})
}

func TestBuildUpdatePayload(t *testing.T) {
	t.Run("Requires a template id", func(t *testing.T) {
		draft := finishedTemplateDraft(t)

		payload, err := BuildUpdatePayload("", draft)

		assert.Error(t, err)
		assert.Nil(t, payload)
	})

	t.Run("Shares the create construction", func(t *testing.T) {
		draft := finishedTemplateDraft(t)

		payload, err := BuildUpdatePayload("tmpl-1", draft)

		require.NoError(t, err)
		assert.Equal(t, "Metabolic Panel", payload.Name)
	})
}

func TestHydrateDraftFromTemplate(t *testing.T) {
	lab := &responses.Lab{
		ID:                "lab-a",
		Name:              "Acme Labs",
		CollectionMethods: []string{models.MethodWalkIn, models.MethodTestkit},
	}
	options := []models.MarkerOption{
		{ID: "m1", Name: "Hemoglobin A1c"},
		{ID: "m2", Name: "TSH"},
	}

	t.Run("Seeds lab method markers and details", func(t *testing.T) {
		template := &vendordto.Template{
			ID:          "tmpl-1",
			Name:        "Metabolic Panel",
			Description: "Routine metabolic check",
			Method:      models.MethodTestkit,
			LabID:       "lab-a",
			MarkerIDs:   []string{"m1", "m2"},
		}

		draft := HydrateDraftFromTemplate("d1", template, lab, options)

		assert.Equal(t, "lab-a", draft.LabID)
		assert.Equal(t, models.MethodTestkit, draft.Method)
		assert.ElementsMatch(t, []string{"m1", "m2"}, draft.SelectedMarkerIDs)
		assert.Equal(t, "Metabolic Panel", draft.Name)
		assert.True(t, draft.Valid())
	})

	t.Run("Unsupported stored method falls back to the lab's first", func(t *testing.T) {
		template := &vendordto.Template{
			ID:        "tmpl-1",
			Name:      "Metabolic Panel",
			Method:    models.MethodAtHomePhlebotomy,
			LabID:     "lab-a",
			MarkerIDs: []string{"m1"},
		}

		draft := HydrateDraftFromTemplate("d1", template, lab, options)

		assert.Equal(t, models.MethodWalkIn, draft.Method)
	})

	t.Run("Markers the lab no longer offers are dropped", func(t *testing.T) {
		template := &vendordto.Template{
			ID:        "tmpl-1",
			Name:      "Metabolic Panel",
			Method:    models.MethodTestkit,
			LabID:     "lab-a",
			MarkerIDs: []string{"m1", "retired"},
		}

		draft := HydrateDraftFromTemplate("d1", template, lab, options)

		assert.Equal(t, []string{"m1"}, draft.SelectedMarkerIDs)
	})

	t.Run("Marker ids fall back to the embedded marker list", func(t *testing.T) {
		template := &vendordto.Template{
			ID:     "tmpl-1",
			Name:   "Metabolic Panel",
			Method: models.MethodTestkit,
			LabID:  "lab-a",
			Markers: []vendordto.Marker{
				{ID: "m2", Name: "TSH"},
			},
		}

		draft := HydrateDraftFromTemplate("d1", template, lab, options)

		assert.Equal(t, []string{"m2"}, draft.SelectedMarkerIDs)
	})
}
