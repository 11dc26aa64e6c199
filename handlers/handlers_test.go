package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatehub/database/query"
	"estatehub/middleware"
	"estatehub/models"
	"estatehub/services/contact"
	"estatehub/services/offering"
	"estatehub/services/property"
	"estatehub/services/user"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetLogger(zap.NewNop())
	utils.RegisterValidators()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   struct {
		Code    string             `json:"code"`
		Details []utils.FieldError `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func serve(r *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// stubProperties records the arguments of the calls the tests make.
type stubProperties struct {
	property.PropertyService

	params    query.ListingParams
	sort      bson.D
	window    query.Window
	createdBy *primitive.ObjectID
	searched  string
}

func (s *stubProperties) ListProperties(_ context.Context, p query.ListingParams, sort bson.D, w query.Window) (query.Page[models.Property], error) {
	s.params, s.sort, s.window = p, sort, w
	return query.NewPage([]models.Property{{Name: "Seaside Villa", Price: 1500000}}, w, 1), nil
}

func (s *stubProperties) SearchProperties(_ context.Context, q string, w query.Window) (query.SearchPage[models.Property], error) {
	s.searched = q
	if q == "" {
		return query.SearchPage[models.Property]{}, utils.Validation("Search query is required")
	}
	return query.SearchPage[models.Property]{Page: query.NewPage[models.Property](nil, w, 0), Query: q}, nil
}

func (s *stubProperties) GetProperty(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	return nil, utils.NotFound("Property")
}

func (s *stubProperties) CreateProperty(_ context.Context, req property.CreatePropertyRequest, createdBy *primitive.ObjectID) (*models.Property, error) {
	s.createdBy = createdBy
	return &models.Property{ID: primitive.NewObjectID(), Name: req.Name}, nil
}

func TestListPropertiesParsesQuery(t *testing.T) {
	stub := &stubProperties{}
	h := &PropertyHandler{Properties: stub}
	r := gin.New()
	r.GET("/properties", h.ListProperties)

	w := serve(r, http.MethodGet, "/properties?category=Residential&subcategory=Villa&featured=true&minPrice=1000000&location=Malibu&sort=-price&page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Properties retrieved successfully", env.Message)

	require.NotNil(t, stub.params.Category)
	assert.Equal(t, models.PropertyCategory("Residential"), *stub.params.Category)
	require.NotNil(t, stub.params.Subcategory)
	assert.Equal(t, models.Subcategory("Villa"), *stub.params.Subcategory)
	require.NotNil(t, stub.params.Featured)
	assert.Equal(t, "true", *stub.params.Featured)
	require.NotNil(t, stub.params.MinPrice)
	assert.Equal(t, 1000000.0, *stub.params.MinPrice)
	assert.Nil(t, stub.params.MaxPrice)
	assert.Nil(t, stub.params.Status)
	assert.Equal(t, "Malibu", stub.params.Location)
	assert.Equal(t, query.Window{Page: 2, Limit: 5}, stub.window)
	assert.Equal(t, "price", stub.sort[0].Key)
	assert.Equal(t, -1, stub.sort[0].Value)
}

func TestListPropertiesRejectsBadParams(t *testing.T) {
	h := &PropertyHandler{Properties: &stubProperties{}}
	r := gin.New()
	r.GET("/properties", h.ListProperties)

	for _, path := range []string{
		"/properties?minPrice=cheap",
		"/properties?category=Industrial",
		"/properties?limit=1000",
		"/properties?sort=bogus",
	} {
		w := serve(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, utils.CodeValidation, decode(t, w).Error.Code, path)
	}
}

func TestSearchProperties(t *testing.T) {
	stub := &stubProperties{}
	h := &PropertyHandler{Properties: stub}
	r := gin.New()
	r.GET("/search", h.SearchProperties)

	w := serve(r, http.MethodGet, "/search?q=ocean+view", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Query string `json:"query"`
		Items []any  `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "ocean view", data.Query)
	assert.Empty(t, data.Items)

	w = serve(r, http.MethodGet, "/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPropertyErrors(t *testing.T) {
	h := &PropertyHandler{Properties: &stubProperties{}}
	r := gin.New()
	r.GET("/properties/:id", h.GetProperty)

	w := serve(r, http.MethodGet, "/properties/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.CodeValidation, decode(t, w).Error.Code)

	w = serve(r, http.MethodGet, "/properties/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.CodeNotFound, decode(t, w).Error.Code)
}

type staticAuth struct{ p *user.Principal }

func (a staticAuth) Authenticate(context.Context, string) (*user.Principal, error) { return a.p, nil }

func TestCreatePropertyRecordsCreator(t *testing.T) {
	stub := &stubProperties{}
	h := &PropertyHandler{Properties: stub}
	agent := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAgent}
	r := gin.New()
	r.POST("/properties", middleware.Authenticate(staticAuth{&user.Principal{User: agent}}), h.CreateProperty)

	body := map[string]any{
		"name":        "Seaside Villa",
		"description": "Five bedrooms on the beach",
		"category":    "Residential",
		"subcategory": "Villa",
		"location":    "Malibu, CA",
		"price":       1500000,
		"type":        "Sell",
	}
	w := serve(r, http.MethodPost, "/properties", body, "Authorization", "Bearer t")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, stub.createdBy)
	assert.Equal(t, agent.ID, *stub.createdBy)

	delete(body, "name")
	w = serve(r, http.MethodPost, "/properties", body, "Authorization", "Bearer t")
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.Equal(t, utils.CodeValidation, env.Error.Code)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, "name", env.Error.Details[0].Field)
}

type stubContacts struct {
	contact.ContactService
	req  contact.SubmitRequest
	meta contact.RequestMeta
	list query.ContactParams
}

func (s *stubContacts) Submit(_ context.Context, req contact.SubmitRequest, meta contact.RequestMeta) (*models.Contact, error) {
	s.req, s.meta = req, meta
	return &models.Contact{ID: primitive.NewObjectID(), Name: req.Name, Priority: models.PriorityUrgent, Tags: []string{"viewing-request"}}, nil
}

func (s *stubContacts) List(_ context.Context, p query.ContactParams, _ bson.D, w query.Window) (query.Page[models.Contact], error) {
	s.list = p
	return query.NewPage[models.Contact](nil, w, 0), nil
}

func TestSubmitContactCapturesRequestMeta(t *testing.T) {
	stub := &stubContacts{}
	h := &ContactHandler{Contacts: stub}
	r := gin.New()
	r.POST("/contact", h.Submit)

	body := map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Urgent: can I schedule a viewing tomorrow?",
	}
	w := serve(r, http.MethodPost, "/contact", body, "X-Forwarded-For", "203.0.113.9", "User-Agent", "test-agent")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "203.0.113.9", stub.meta.IPAddress)
	assert.Equal(t, "test-agent", stub.meta.UserAgent)

	var created models.Contact
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	assert.Equal(t, models.PriorityUrgent, created.Priority)

	body["message"] = "short"
	w = serve(r, http.MethodPost, "/contact", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContactsFilters(t *testing.T) {
	stub := &stubContacts{}
	h := &ContactHandler{Contacts: stub}
	r := gin.New()
	r.GET("/contact", h.List)

	prop := primitive.NewObjectID()
	w := serve(r, http.MethodGet, "/contact?status=pending&priority=high&search=villa&property="+prop.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.list.Status)
	assert.Equal(t, models.ContactStatus("pending"), *stub.list.Status)
	require.NotNil(t, stub.list.Property)
	assert.Equal(t, prop, *stub.list.Property)
	assert.Equal(t, "villa", stub.list.Search)

	w = serve(r, http.MethodGet, "/contact?property=xyz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubServices struct {
	offering.OfferingService
	isAdmin bool
	rawSort string
}

func (s *stubServices) ListServices(_ context.Context, _ query.ServiceParams, rawSort string, w query.Window, isAdmin bool) (query.Page[models.Service], error) {
	s.isAdmin, s.rawSort = isAdmin, rawSort
	return query.NewPage[models.Service](nil, w, 0), nil
}

func TestListServicesPassesCallerRole(t *testing.T) {
	stub := &stubServices{}
	h := &ServiceHandler{Services: stub}
	admin := &user.Principal{User: &models.User{Role: models.RoleAdmin}}

	r := gin.New()
	r.GET("/public", h.ListServices)
	r.GET("/admin", middleware.OptionalAuth(staticAuth{admin}), h.ListServices)

	serve(r, http.MethodGet, "/public?sort=-createdAt", nil)
	assert.False(t, stub.isAdmin)
	assert.Equal(t, "-createdAt", stub.rawSort)

	serve(r, http.MethodGet, "/admin", nil, "Authorization", "Bearer t")
	assert.True(t, stub.isAdmin)
}

func TestHealth(t *testing.T) {
	down := utils.NewHealthMonitor(utils.HealthCheck{Name: "mongo", Ping: func(context.Context) error { return assert.AnError }})
	up := utils.NewHealthMonitor(utils.HealthCheck{Name: "mongo", Ping: func(context.Context) error { return nil }})

	r := gin.New()
	r.GET("/down", (&HealthHandler{Monitor: down}).Health)
	r.GET("/up", (&HealthHandler{Monitor: up}).Health)

	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/down", nil).Code)
	w := serve(r, http.MethodGet, "/up", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status utils.HealthStatus
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &status))
	assert.Equal(t, "ok", status.Status)
	assert.True(t, status.Checks["mongo"])
}
