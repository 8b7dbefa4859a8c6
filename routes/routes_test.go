package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/OishiSharmeen04/TravelEase-server/handlers"
	"github.com/OishiSharmeen04/TravelEase-server/models"
	"github.com/OishiSharmeen04/TravelEase-server/utils"
)

// fakeVehicles is an in-memory VehicleStore backing the routing tests.
type fakeVehicles struct {
	byID     map[primitive.ObjectID]*models.Vehicle
	latest   []models.Vehicle
	writes   int
	anyCalls int
}

func (f *fakeVehicles) All(ctx context.Context) ([]models.Vehicle, error) {
	f.anyCalls++
	return nil, nil
}

func (f *fakeVehicles) Latest(ctx context.Context, limit int64) ([]models.Vehicle, error) {
	f.anyCalls++
	return f.latest, nil
}

func (f *fakeVehicles) ByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	f.anyCalls++
	return f.byID[id], nil
}

func (f *fakeVehicles) ByOwner(ctx context.Context, email string) ([]models.Vehicle, error) {
	f.anyCalls++
	return nil, nil
}

func (f *fakeVehicles) Insert(ctx context.Context, vehicle *models.Vehicle) (primitive.ObjectID, error) {
	f.anyCalls++
	f.writes++
	id := primitive.NewObjectID()
	vehicle.ID = id
	f.byID[id] = vehicle
	return id, nil
}

func (f *fakeVehicles) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	f.anyCalls++
	f.writes++
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeVehicles) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	f.anyCalls++
	f.writes++
	delete(f.byID, id)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type fakeBookings struct{}

func (f *fakeBookings) Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (f *fakeBookings) ByOwner(ctx context.Context, email string) ([]models.Booking, error) {
	return []models.Booking{}, nil
}

type fakeUsers struct{}

func (f *fakeUsers) ByEmail(ctx context.Context, email string) (*models.User, error) { return nil, nil }
func (f *fakeUsers) Insert(ctx context.Context, user *models.User) error             { return nil }

func newServer(t *testing.T) (*echo.Echo, *fakeVehicles, *utils.JWTAuth) {
	t.Helper()
	auth := utils.NewJWTAuth("test-secret", time.Hour)
	vehicles := &fakeVehicles{byID: map[primitive.ObjectID]*models.Vehicle{}}

	e := echo.New()
	e.Validator = utils.NewValidator()
	Register(e, Controllers{
		Vehicles: handlers.NewVehicleController(vehicles, nil),
		Bookings: handlers.NewBookingController(&fakeBookings{}),
		Users:    handlers.NewUserController(&fakeUsers{}, auth),
		Verifier: auth,
	})
	return e, vehicles, auth
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLiveness(t *testing.T) {
	e, _, _ := newServer(t)
	rec := do(e, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "TravelEase Server is Running!", rec.Body.String())
}

func TestLatestRouteWinsOverIDParam(t *testing.T) {
	e, vehicles, _ := newServer(t)
	vehicles.latest = []models.Vehicle{{VehicleName: "Newest"}}

	rec := do(e, http.MethodGet, "/vehicles/latest", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Newest")
}

func TestProtectedRouteRejectsBeforeStoreAccess(t *testing.T) {
	e, vehicles, _ := newServer(t)

	rec := do(e, http.MethodPost, "/vehicles", "", `{"vehicleName":"Van","userEmail":"a@x.com"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, vehicles.anyCalls)
}

func TestCreateThenFetchRoundTrip(t *testing.T) {
	e, vehicles, auth := newServer(t)
	token, err := auth.Issue("a@x.com")
	require.NoError(t, err)

	rec := do(e, http.MethodPost, "/vehicles", token, `{"vehicleName":"Van","userEmail":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, vehicles.writes)

	var id primitive.ObjectID
	for created := range vehicles.byID {
		id = created
	}
	rec = do(e, http.MethodGet, "/vehicles/"+id.Hex(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"vehicleName":"Van"`)
	require.NotContains(t, rec.Body.String(), `"createdAt":"0001-01-01`)
}

func TestUpdateByStrangerIsForbidden(t *testing.T) {
	e, vehicles, auth := newServer(t)
	owner, err := auth.Issue("a@x.com")
	require.NoError(t, err)

	rec := do(e, http.MethodPost, "/vehicles", owner, `{"vehicleName":"Van","userEmail":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var id primitive.ObjectID
	for created := range vehicles.byID {
		id = created
	}

	stranger, err := auth.Issue("b@x.com")
	require.NoError(t, err)
	rec = do(e, http.MethodPut, "/vehicles/"+id.Hex(), stranger, `{"vehicleName":"Hijacked"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Van", vehicles.byID[id].VehicleName)
}

func TestMyBookingsForOtherUserIsForbidden(t *testing.T) {
	e, _, auth := newServer(t)
	token, err := auth.Issue("c@x.com")
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/my-bookings/a@x.com", token, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteNonexistentIsNotFound(t *testing.T) {
	e, vehicles, auth := newServer(t)
	token, err := auth.Issue("a@x.com")
	require.NoError(t, err)

	rec := do(e, http.MethodDelete, "/vehicles/"+primitive.NewObjectID().Hex(), token, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Zero(t, vehicles.writes)
}

func TestMalformedIDIsBadRequest(t *testing.T) {
	e, vehicles, _ := newServer(t)
	rec := do(e, http.MethodGet, "/vehicles/not-hex", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, vehicles.anyCalls)
}
