package auditdelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/internal/middleware"
	"github.com/evermed/finvalid/internal/test"
	"github.com/evermed/finvalid/pkg/errorspkg"
	"github.com/evermed/finvalid/pkg/randompkg"
	"github.com/evermed/finvalid/pkg/tokenpkg"
	"github.com/evermed/finvalid/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestHistory(t *testing.T) {
	username := randompkg.ActorID()
	recordID := randompkg.RecordID()

	history := []domain.AuditEntry{
		test.RandomAuditEntry(recordID, 1),
		test.RandomAuditEntry(recordID, 2),
		test.RandomAuditEntry(recordID, 3),
	}

	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	testCases := []struct {
		name           string
		recordID       string
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:     "OK",
			recordID: recordID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, domain.RoleStaff, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					History(gomock.Any(), gomock.Eq(recordID)).
					Times(1).
					Return(history, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					History []domain.AuditEntry `json:"history"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareTimes := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(history, got.History, compareTimes); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:     "OKEmptyHistory",
			recordID: recordID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, domain.RoleStaff, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					History(gomock.Any(), gomock.Eq(recordID)).
					Times(1).
					Return([]domain.AuditEntry{}, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					History []domain.AuditEntry `json:"history"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if len(got.History) != 0 {
					t.Errorf("res.Data.History=%v, want empty", got.History)
				}
			},
		},
		{
			name:     "InvalidRecordID",
			recordID: "not-a-uuid",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, domain.RoleStaff, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().History(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID is invalid",
		},
		{
			name:     "NoAuthorization",
			recordID: recordID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().History(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:     "InternalServerError",
			recordID: recordID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, domain.RoleStaff, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					History(gomock.Any(), gomock.Eq(recordID)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/records/:id/audit", handler.History)

			tc.buildStubs(service)

			url := "/records/" + tc.recordID + "/audit"

			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					History []domain.AuditEntry `json:"history"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}
