package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reprojection-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockConvertService is a mock implementation of the ConvertService interface
type MockConvertService struct {
	mock.Mock
}

// ConvertTable implements ConvertService.
func (m *MockConvertService) ConvertTable(ctx context.Context, table *models.RecordTable, xField, yField, sourceCRS, targetCRS string) (*models.RecordTable, error) {
	args := m.Called(ctx, table, xField, yField, sourceCRS, targetCRS)
	return args.Get(0).(*models.RecordTable), args.Error(1)
}

var handlerDefaults = models.ConversionDefaults{
	XField:    "x",
	YField:    "y",
	SourceCRS: "EPSG:4326",
	TargetCRS: "EPSG:6543",
}

func TestConvertHandler_Convert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Setup
	mockSvc := new(MockConvertService)
	handler := NewConvertHandler(mockSvc, handlerDefaults)

	requestTable := &models.RecordTable{
		Columns: []string{"name", "x", "y"},
		Rows:    [][]string{{"Raleigh", "-78.6382", "35.7796"}},
	}
	converted := &models.RecordTable{
		Columns: []string{"name", "x", "y", "Easting", "Northing"},
		Rows:    [][]string{{"Raleigh", "-78.6382", "35.7796", "2107312.429883959", "738866.6072455706"}},
	}

	// Blank request fields fall back to the configured defaults.
	mockSvc.On("ConvertTable", mock.Anything, requestTable, "x", "y", "EPSG:4326", "EPSG:6543").
		Return(converted, nil)

	payload, err := json.Marshal(models.ConversionRequest{Table: *requestTable})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	// Execute
	handler.Convert(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ConversionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, *converted, resp.Table)

	mockSvc.AssertExpectations(t)
}

func TestConvertHandler_Convert_ExplicitParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Setup
	mockSvc := new(MockConvertService)
	handler := NewConvertHandler(mockSvc, handlerDefaults)

	converted := &models.RecordTable{
		Columns: []string{"lon", "lat", "Easting", "Northing"},
		Rows:    [][]string{},
	}

	mockSvc.On("ConvertTable", mock.Anything, mock.Anything, "lon", "lat", "EPSG:4269", "EPSG:2264").
		Return(converted, nil)

	payload := `{
		"table": {"columns": ["lon", "lat"], "rows": []},
		"x_field": "lon",
		"y_field": "lat",
		"source_crs": "EPSG:4269",
		"target_crs": "EPSG:2264"
	}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	// Execute
	handler.Convert(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestConvertHandler_Convert_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Setup
	mockSvc := new(MockConvertService)
	handler := NewConvertHandler(mockSvc, handlerDefaults)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	// Execute
	handler.Convert(c)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid request body", body["error"])

	mockSvc.AssertNotCalled(t, "ConvertTable",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConvertHandler_Convert_Failures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name: "missing columns",
			serviceError: &models.ConversionError{
				Kind:    models.MissingColumns,
				Detail:  "missing required columns: y",
				Columns: []string{"y"},
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": "missing required columns: y", "kind": "missing_columns"},
		},
		{
			name: "missing coordinate values",
			serviceError: &models.ConversionError{
				Kind:   models.MissingCoordinateValues,
				Detail: "missing coordinate values in rows 2",
				Rows:   []int{2},
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": "missing coordinate values in rows 2", "kind": "missing_coordinate_values"},
		},
		{
			name: "invalid crs identifier",
			serviceError: &models.ConversionError{
				Kind:   models.InvalidCrsIdentifier,
				Detail: `unrecognized CRS identifier "wgs84" (expected EPSG:<code> or a proj definition)`,
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: map[string]string{
				"error": `unrecognized CRS identifier "wgs84" (expected EPSG:<code> or a proj definition)`,
				"kind":  "invalid_crs_identifier",
			},
		},
		{
			name: "projection failure",
			serviceError: &models.ConversionError{
				Kind:   models.ProjectionFailure,
				Detail: "row 2 (x=-78.6382, y=95): latitude or longitude exceeded limits",
				Rows:   []int{2},
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{
				"error": "row 2 (x=-78.6382, y=95): latitude or longitude exceeded limits",
				"kind":  "projection_failure",
			},
		},
		{
			name:           "unexpected error",
			serviceError:   assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]string{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockConvertService)
			handler := NewConvertHandler(mockSvc, handlerDefaults)

			var noTable *models.RecordTable
			mockSvc.On("ConvertTable", mock.Anything, mock.Anything, "x", "y", "EPSG:4326", "EPSG:6543").
				Return(noTable, tt.serviceError)

			payload := `{"table":{"columns":["name","x","y"],"rows":[["Raleigh","-78.6382","35.7796"]]}}`

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(payload))
			c.Request.Header.Set("Content-Type", "application/json")

			// Execute
			handler.Convert(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)

			mockSvc.AssertExpectations(t)
		})
	}
}
