package room_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	otelMocks "ehotels/infras/otel/mocks"
	roomMocks "ehotels/internal/domains/room/mocks"
	"ehotels/internal/domains/room/model/dto"
	"ehotels/internal/handlers/room"
	"ehotels/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*roomMocks.MockRoomService, http.Handler) {
	t.Helper()

	svc := roomMocks.NewMockRoomService(gomock.NewController(t))
	handler := room.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func multipartBody(t *testing.T, imageType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, value := range map[string]string{
		"hotel_id": "1",
		"capacity": "2",
		"viewtype": "Sea",
		"price":    "120.5",
		"status":   "Available",
	} {
		require.NoError(t, writer.WriteField(field, value))
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="room.png"`)
	header.Set(constant.RequestHeaderContentType, imageType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreateRoom_Multipart(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req dto.RoomRequest) error {
			assert.Equal(t, int64(1), req.HotelID)
			assert.Equal(t, 2, req.Capacity)
			assert.InDelta(t, 120.5, req.Price, 0.001)
			require.NotNil(t, req.ImageFile)
			assert.Equal(t, "room.png", req.ImageFile.Filename)

			return nil
		})

	body, contentType := multipartBody(t, "image/png")

	req := httptest.NewRequest(http.MethodPost, "/employee/rooms/add", body)
	req.Header.Set(constant.RequestHeaderContentType, contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constant.PathRooms, rec.Header().Get(constant.RequestHeaderLocation))
}

func TestCreateRoom_RejectsNonImageFile(t *testing.T) {
	_, router := setup(t)

	body, contentType := multipartBody(t, "application/pdf")

	req := httptest.NewRequest(http.MethodPost, "/employee/rooms/add", body)
	req.Header.Set(constant.RequestHeaderContentType, contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRoom_JSONWithoutImage(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Update(gomock.Any(), int64(5), dto.RoomRequest{
		HotelID:    1,
		Capacity:   3,
		ViewType:   "Mountain",
		Extendable: true,
		Price:      99,
		Status:     "Available",
	}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/employee/rooms/edit/5", strings.NewReader(
		`{"hotel_id":1,"capacity":3,"viewtype":"Mountain","extendable":true,"price":99,"status":"Available"}`))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestGetRoom(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any(), int64(5)).Return(dto.RoomResponse{ID: 5, HotelName: "Harbour View"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/rooms/edit/5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"room_id":5`)
}
