package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "tracker/internal/adapters/in/http"
	"tracker/internal/adapters/out/pubsub"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/idlock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory persistence standing in for postgres in API tests.
type memStore struct {
	shipments  map[string]*shipment.Shipment
	associates map[string]*associate.DeliveryAssociate
}

func newMemStore() *memStore {
	return &memStore{
		shipments:  make(map[string]*shipment.Shipment),
		associates: make(map[string]*associate.DeliveryAssociate),
	}
}

type memUoW struct{ store *memStore }

func (u *memUoW) Begin(context.Context) error    { return nil }
func (u *memUoW) Commit(context.Context) error   { return nil }
func (u *memUoW) Rollback(context.Context) error { return nil }

func (u *memUoW) ShipmentRepository() ports.ShipmentRepository {
	return &memShipmentRepo{store: u.store}
}

func (u *memUoW) AssociateRepository() ports.AssociateRepository {
	return &memAssociateRepo{store: u.store}
}

type memShipmentRepo struct{ store *memStore }

func (r *memShipmentRepo) Add(_ context.Context, s *shipment.Shipment) error {
	r.store.shipments[s.ID().String()] = s
	return nil
}

func (r *memShipmentRepo) Update(ctx context.Context, s *shipment.Shipment) error {
	return r.Add(ctx, s)
}

func (r *memShipmentRepo) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	s, ok := r.store.shipments[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id.String())
	}
	return s, nil
}

func (r *memShipmentRepo) GetAllActive(context.Context) ([]*shipment.Shipment, error) {
	return nil, nil
}

type memAssociateRepo struct{ store *memStore }

func (r *memAssociateRepo) Add(_ context.Context, a *associate.DeliveryAssociate) error {
	r.store.associates[a.ID().String()] = a
	return nil
}

func (r *memAssociateRepo) Update(ctx context.Context, a *associate.DeliveryAssociate) error {
	return r.Add(ctx, a)
}

func (r *memAssociateRepo) Get(
	_ context.Context,
	id kernel.UUID,
) (*associate.DeliveryAssociate, error) {
	a, ok := r.store.associates[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryAssociate", id.String())
	}
	return a, nil
}

func (r *memAssociateRepo) GetAllActive(context.Context) ([]*associate.DeliveryAssociate, error) {
	return nil, nil
}

type uowFactory struct{ store *memStore }

func (f uowFactory) Create() commands.UoW { return &memUoW{store: f.store} }

type shipmentUoWFactory struct{ store *memStore }

func (f shipmentUoWFactory) Create() commands.ShipmentUoW { return &memUoW{store: f.store} }

type associateUoWFactory struct{ store *memStore }

func (f associateUoWFactory) Create() commands.AssociateUoW { return &memUoW{store: f.store} }

type testAPI struct {
	e     *echo.Echo
	store *memStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := newMemStore()
	hub := pubsub.NewHub(8)
	t.Cleanup(hub.Close)
	locks := idlock.New()

	sw, err := kernel.NewGeoPoint(76.3647, 30.3380)
	require.NoError(t, err)
	ne, err := kernel.NewGeoPoint(76.4000, 30.3562)
	require.NoError(t, err)
	area, err := kernel.NewBoundingBox(sw, ne)
	require.NoError(t, err)

	server := api.NewServer(
		commands.NewCreateShipmentCommandHandler(
			shipmentUoWFactory{store}, shipment.DefaultTariff()),
		commands.NewAssignAssociateCommandHandler(uowFactory{store}, hub, locks),
		commands.NewAdvanceShipmentStatusCommandHandler(uowFactory{store}, hub, locks),
		commands.NewCreateAssociateCommandHandler(associateUoWFactory{store}, area),
		commands.NewUpdateAssociateLocationCommandHandler(associateUoWFactory{store}, hub, locks),
		queries.GetActiveShipmentsQueryHandler{},
		queries.GetAllAssociatesQueryHandler{},
		queries.GetAdminStatsQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &testAPI{e: e, store: store}
}

func (a *testAPI) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) createShipment(t *testing.T) api.Shipment {
	t.Helper()

	rec := a.request(t, http.MethodPost, "/api/v1/shipments", map[string]any{
		"userId":         kernel.NewUUID().String(),
		"pickupLocation": map[string]float64{"lng": 76.3700, "lat": 30.3400},
		"dropLocation":   map[string]float64{"lng": 76.3900, "lat": 30.3500},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created api.Shipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func (a *testAPI) createAssociate(t *testing.T) api.Associate {
	t.Helper()

	rec := a.request(t, http.MethodPost, "/api/v1/delivery-associates", map[string]string{
		"name":  "kai",
		"email": "kai@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created api.Associate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t)
	rec := a.request(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateShipment(t *testing.T) {
	t.Run("creates priced shipment in requested status", func(t *testing.T) {
		a := newTestAPI(t)
		created := a.createShipment(t)

		assert.Equal(t, "requested", created.Status)
		assert.Nil(t, created.AssociateID)
		assert.Greater(t, created.Price, 50.0)
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		a := newTestAPI(t)
		rec := a.request(t, http.MethodPost, "/api/v1/shipments", map[string]any{
			"userId":         kernel.NewUUID().String(),
			"pickupLocation": map[string]float64{"lng": 76.37, "lat": 91.0},
			"dropLocation":   map[string]float64{"lng": 76.39, "lat": 30.35},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		a := newTestAPI(t)
		rec := a.request(t, http.MethodPost, "/api/v1/shipments", map[string]any{
			"userId":         "not-a-uuid",
			"pickupLocation": map[string]float64{"lng": 76.37, "lat": 30.34},
			"dropLocation":   map[string]float64{"lng": 76.39, "lat": 30.35},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignAssociate(t *testing.T) {
	t.Run("assigns available associate", func(t *testing.T) {
		a := newTestAPI(t)
		created := a.createShipment(t)
		courier := a.createAssociate(t)

		rec := a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+created.ID+"/delivery-associate",
			map[string]string{"deliveryAssociateId": courier.ID})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated api.Shipment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "deliveryAssociateAssigned", updated.Status)
		require.NotNil(t, updated.AssociateID)
		assert.Equal(t, courier.ID, *updated.AssociateID)

		stored := a.store.shipments[created.ID]
		assert.Equal(t, shipment.AssociateAssigned, stored.Status())
	})

	t.Run("rejects busy associate with conflict", func(t *testing.T) {
		a := newTestAPI(t)
		first := a.createShipment(t)
		second := a.createShipment(t)
		courier := a.createAssociate(t)

		rec := a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+first.ID+"/delivery-associate",
			map[string]string{"deliveryAssociateId": courier.ID})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+second.ID+"/delivery-associate",
			map[string]string{"deliveryAssociateId": courier.ID})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown associate returns not found", func(t *testing.T) {
		a := newTestAPI(t)
		created := a.createShipment(t)

		rec := a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+created.ID+"/delivery-associate",
			map[string]string{"deliveryAssociateId": kernel.NewUUID().String()})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdvanceShipmentStatus(t *testing.T) {
	t.Run("walks the delivery chain", func(t *testing.T) {
		a := newTestAPI(t)
		created := a.createShipment(t)
		courier := a.createAssociate(t)

		rec := a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+created.ID+"/delivery-associate",
			map[string]string{"deliveryAssociateId": courier.ID})
		require.Equal(t, http.StatusOK, rec.Code)

		for _, status := range []string{
			"pickupLocationReached", "transporting", "dropLocationReached", "delivered",
		} {
			rec = a.request(t, http.MethodPatch,
				"/api/v1/shipments/"+created.ID+"/status",
				map[string]string{"status": status})
			require.Equal(t, http.StatusOK, rec.Code, "status %s: %s", status, rec.Body.String())

			var updated api.Shipment
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
			require.Equal(t, status, updated.Status)
		}

		// Delivery frees the associate.
		assert.Equal(t, associate.Available, a.store.associates[courier.ID].Status())
	})

	t.Run("skipping a step returns conflict", func(t *testing.T) {
		a := newTestAPI(t)
		created := a.createShipment(t)

		rec := a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+created.ID+"/status",
			map[string]string{"status": "transporting"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown status string is a bad request", func(t *testing.T) {
		a := newTestAPI(t)
		created := a.createShipment(t)

		rec := a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+created.ID+"/status",
			map[string]string{"status": "teleported"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown shipment returns not found", func(t *testing.T) {
		a := newTestAPI(t)
		rec := a.request(t, http.MethodPatch,
			"/api/v1/shipments/"+kernel.NewUUID().String()+"/status",
			map[string]string{"status": "cancelled"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateAssociateLocation(t *testing.T) {
	t.Run("stores the reported position", func(t *testing.T) {
		a := newTestAPI(t)
		courier := a.createAssociate(t)

		rec := a.request(t, http.MethodPost,
			"/api/v1/delivery-associates/"+courier.ID+"/location",
			map[string]float64{"lng": 76.3801, "lat": 30.3466})
		assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		stored := a.store.associates[courier.ID]
		assert.InDelta(t, 76.3801, stored.Location().Lon(), 1e-9)
		assert.InDelta(t, 30.3466, stored.Location().Lat(), 1e-9)
	})

	t.Run("unknown associate returns not found", func(t *testing.T) {
		a := newTestAPI(t)
		rec := a.request(t, http.MethodPost,
			"/api/v1/delivery-associates/"+kernel.NewUUID().String()+"/location",
			map[string]float64{"lng": 76.3801, "lat": 30.3466})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		a := newTestAPI(t)
		courier := a.createAssociate(t)

		rec := a.request(t, http.MethodPost,
			"/api/v1/delivery-associates/"+courier.ID+"/location",
			map[string]float64{"lng": 200.0, "lat": 30.3466})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
