package models

import (
	"labdash-service/internal/pkg/constvars"
	"time"
)

// DraftState is the derived progression of a dialog draft. It is never
// stored, only computed from the fields that are.
type DraftState string

const (
	DraftStateEmpty            DraftState = "empty"
	DraftStateLabChosen        DraftState = "lab_chosen"
	DraftStateMethodEligible   DraftState = "method_eligible"
	DraftStateBiomarkersLoaded DraftState = "biomarkers_loaded"
	DraftStateValid            DraftState = "valid"
)

// MarkerOption is one entry of the checklist rendered for the chosen lab.
type MarkerOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Draft is the client-side working copy behind the template and order
// dialogs. All transitions are synchronous and either apply fully or reject
// with a false return; rejected transitions leave the draft untouched.
//
// The option list is always exactly the markers last fetched for the current
// lab: MarkerFetchKey records which lab a fetch was issued for, and
// ApplyMarkerList drops any response whose key no longer matches.
type Draft struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	Name        string `json:"name"`
	Description string `json:"description"`

	LabID      string   `json:"lab_id"`
	LabMethods []string `json:"lab_methods"`
	Method     string   `json:"method"`

	SelectedMarkerIDs []string       `json:"selected_marker_ids"`
	MarkerFetchKey    string         `json:"marker_fetch_key"`
	MarkerOptions     []MarkerOption `json:"marker_options"`
	MarkersLoaded     bool           `json:"markers_loaded"`

	SelectedTemplateID string         `json:"selected_template_id"`
	PatientUserID      string         `json:"patient_user_id"`
	Payor              string         `json:"payor"`
	Patient            PatientDetails `json:"patient"`
	HIPAAAuthorized    bool           `json:"hipaa_authorized"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDraft(id, kind string) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:        id,
		Kind:      kind,
		Payor:     "self",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectLab switches the owning lab. Changing to a new lab clears the
// method, the selected markers and the loaded option list, and reports
// whether a scoped marker fetch must be issued. Clearing the lab clears
// everything downstream without a fetch. Re-selecting the current lab only
// refreshes the supported-method list.
func (d *Draft) SelectLab(labID string, supportedMethods []string) (needsFetch bool) {
	if labID == d.LabID {
		if labID != "" {
			d.LabMethods = supportedMethods
		}
		return false
	}

	d.LabID = labID
	d.Method = ""
	d.SelectedMarkerIDs = nil
	d.MarkerOptions = nil
	d.MarkersLoaded = false
	d.touch()

	if labID == "" {
		d.LabMethods = nil
		d.MarkerFetchKey = ""
		return false
	}

	d.LabMethods = supportedMethods
	d.MarkerFetchKey = labID
	return true
}

// SelectMethod assigns the collection method. Values outside the chosen
// lab's supported set are rejected without a state change.
func (d *Draft) SelectMethod(method string) bool {
	if d.LabID == "" || !MethodSupported(d.LabMethods, method) {
		return false
	}
	d.Method = method
	d.touch()
	return true
}

// ApplyMarkerList installs a fetched option list. The list is applied only
// when it was fetched for the lab that is still selected; anything else is a
// stale response and is silently discarded.
func (d *Draft) ApplyMarkerList(labID string, options []MarkerOption) bool {
	if labID == "" || labID != d.LabID || labID != d.MarkerFetchKey {
		return false
	}
	d.MarkerOptions = options
	d.MarkersLoaded = true
	d.touch()
	return true
}

// ToggleMarker adds or removes a marker from the selection. Unavailable when
// no lab is chosen or the marker is not in the loaded option list.
func (d *Draft) ToggleMarker(markerID string) bool {
	if d.LabID == "" || !d.MarkersLoaded || !d.hasOption(markerID) {
		return false
	}
	for i, id := range d.SelectedMarkerIDs {
		if id == markerID {
			d.SelectedMarkerIDs = append(d.SelectedMarkerIDs[:i], d.SelectedMarkerIDs[i+1:]...)
			d.touch()
			return true
		}
	}
	d.SelectedMarkerIDs = append(d.SelectedMarkerIDs, markerID)
	d.touch()
	return true
}

func (d *Draft) SetDetails(name, description, payor string) {
	d.Name = name
	d.Description = description
	if payor != "" {
		d.Payor = payor
	}
	d.touch()
}

func (d *Draft) SetTemplateSelection(templateID string) {
	d.SelectedTemplateID = templateID
	d.touch()
}

func (d *Draft) SetPatient(userID string, details PatientDetails, hipaaAuthorized bool) {
	d.PatientUserID = userID
	d.Patient = details
	d.HIPAAAuthorized = hipaaAuthorized
	d.touch()
}

// Reset returns the draft to its just-opened state, keeping id and kind.
func (d *Draft) Reset() {
	fresh := NewDraft(d.ID, d.Kind)
	fresh.CreatedAt = d.CreatedAt
	*d = *fresh
}

func (d *Draft) HasMarker(markerID string) bool {
	for _, id := range d.SelectedMarkerIDs {
		if id == markerID {
			return true
		}
	}
	return false
}

// Valid reports whether the draft satisfies the submission predicate: lab
// chosen, method within the lab's supported set, at least one marker, and for
// the order flow a resolved template, a patient with every field filled and
// an affirmative HIPAA authorization. Template drafts additionally need their
// name and description.
func (d *Draft) Valid() bool {
	if d.LabID == "" || !MethodSupported(d.LabMethods, d.Method) || len(d.SelectedMarkerIDs) == 0 {
		return false
	}
	switch d.Kind {
	case constvars.DraftKindTemplate:
		return d.Name != "" && d.Description != ""
	case constvars.DraftKindOrder:
		return d.SelectedTemplateID != "" &&
			d.PatientUserID != "" &&
			d.Patient.Complete() &&
			d.HIPAAAuthorized
	default:
		return false
	}
}

// State derives the dialog progression for rendering.
func (d *Draft) State() DraftState {
	switch {
	case d.Valid():
		return DraftStateValid
	case d.MarkersLoaded:
		return DraftStateBiomarkersLoaded
	case d.Method != "":
		return DraftStateMethodEligible
	case d.LabID != "":
		return DraftStateLabChosen
	default:
		return DraftStateEmpty
	}
}

func (d *Draft) hasOption(markerID string) bool {
	for _, opt := range d.MarkerOptions {
		if opt.ID == markerID {
			return true
		}
	}
	return false
}

func (d *Draft) touch() {
	d.UpdatedAt = time.Now().UTC()
}
