package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentStore struct {
	opts     []models.AppointmentOption
	aggOpts  []models.AppointmentOption
	dateSeen string
}

func (f *fakeAppointmentStore) OptionsForDate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	f.dateSeen = date
	return f.opts, nil
}

func (f *fakeAppointmentStore) OptionsForDateAggregate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	f.dateSeen = date
	return f.aggOpts, nil
}

func (f *fakeAppointmentStore) Specialties(ctx context.Context) ([]models.AppointmentSpecialty, error) {
	specialties := make([]models.AppointmentSpecialty, 0, len(f.opts))
	for _, opt := range f.opts {
		specialties = append(specialties, models.AppointmentSpecialty{Name: opt.Name})
	}
	return specialties, nil
}

func TestOptionsPassesDate(t *testing.T) {
	store := &fakeAppointmentStore{opts: []models.AppointmentOption{
		{Name: "Braces", Price: 300, Slots: []string{"10:00"}},
	}}
	h := NewAppointmentHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/appointmentOptions?date=2023-01-01", nil)
	rec := httptest.NewRecorder()

	h.Options(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2023-01-01", store.dateSeen)

	var resp []models.AppointmentOption
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Braces", resp[0].Name)
	assert.Equal(t, []string{"10:00"}, resp[0].Slots)
}

func TestOptionsEmptyStore(t *testing.T) {
	h := NewAppointmentHandler(&fakeAppointmentStore{})

	req := httptest.NewRequest(http.MethodGet, "/appointmentOptions?date=2023-01-01", nil)
	rec := httptest.NewRecorder()

	h.Options(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty result is an empty array, not null")
}

func TestOptionsV2PassesDate(t *testing.T) {
	store := &fakeAppointmentStore{aggOpts: []models.AppointmentOption{
		{Name: "Teeth Cleaning", Price: 80, Slots: []string{"09:00"}},
	}}
	h := NewAppointmentHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/v2/appointmentOptions?date=2023-01-02", nil)
	rec := httptest.NewRecorder()

	h.OptionsV2(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2023-01-02", store.dateSeen)
}

func TestSpecialties(t *testing.T) {
	store := &fakeAppointmentStore{opts: []models.AppointmentOption{
		{Name: "Braces"},
		{Name: "Oral Surgery"},
	}}
	h := NewAppointmentHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/appointmentSpecialty", nil)
	rec := httptest.NewRecorder()

	h.Specialties(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []models.AppointmentSpecialty
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Braces", resp[0].Name)
}
