package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/handler"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-management/library/internal/handler/mocks"
)

var (
	alice = auth.Principal{UserID: 2, Username: "alice", IsActive: true}
	root  = auth.Principal{UserID: 1, Username: "root", IsAdmin: true, IsActive: true}
)

type testServer struct {
	svc    *service_mocks.MockServices
	tokens *auth.TokenManager
	e      *echo.Echo
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockServices(c)
	tokens := auth.NewTokenManager(auth.Config{
		Secret:     "test-secret",
		Issuer:     "library-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	h := handler.New(svc, tokens, zap.NewExample().Named("test"))
	return testServer{svc: svc, tokens: tokens, e: h.NewRouter()}
}

// as expects the principal reload and returns the matching bearer header.
func (s testServer) as(t *testing.T, p auth.Principal) string {
	t.Helper()
	pair, err := s.tokens.Issue(p)
	require.NoError(t, err)
	s.svc.EXPECT().Principal(gomock.Any(), p.UserID).Return(p, nil)
	return "Bearer " + pair.AccessToken
}

func (s testServer) do(method, target, body, authorization string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		r.Header.Set(echo.HeaderAuthorization, authorization)
	}
	w := httptest.NewRecorder()
	s.e.ServeHTTP(w, r)
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	for _, path := range []string{"/health", "/manage/health"} {
		w := s.do(http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockServices)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"userName":"alice","password":"secret1"}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					Login(gomock.Any(), "alice", "secret1").
					Return(auth.Tokens{AccessToken: "a", RefreshToken: "r", TokenType: auth.TokenTypeBearer, ExpiresIn: 60}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"access_token":"a","refresh_token":"r","token_type":"bearer","expires_in":60}`,
			},
		},
		{
			name: "err. bad credentials",
			body: `{"userName":"alice","password":"nope12"}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					Login(gomock.Any(), "alice", "nope12").
					Return(auth.Tokens{}, errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"incorrect username or password"}`,
			},
		},
		{
			name: "err. disabled",
			body: `{"userName":"alice","password":"secret1"}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					Login(gomock.Any(), "alice", "secret1").
					Return(auth.Tokens{}, errs.ErrAccountDisabled)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"account is disabled or does not exist"}`,
			},
		},
		{
			name:         "err. password required",
			body:         `{"userName":"alice"}`,
			mockBehavior: func(r *service_mocks.MockServices) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(http.MethodPost, "/auth/login", tt.body, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.JSONEq(t, tt.response.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_LoginForm(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.svc.EXPECT().
		Login(gomock.Any(), "alice", "secret1").
		Return(auth.Tokens{AccessToken: "a", TokenType: auth.TokenTypeBearer}, nil)

	r := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader("username=alice&password=secret1"))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := httptest.NewRecorder()
	s.e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"access_token":"a"`)
}

func TestHandler_Authentication(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockServices)

	var tests = []struct {
		name          string
		authorization func(s testServer) string
		mockBehavior  mockBehavior
		expectedCode  int
		expectedBody  string
	}{
		{
			name:          "err. no header",
			authorization: func(testServer) string { return "" },
			mockBehavior:  func(r *service_mocks.MockServices) {},
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"message":"no authorization header"}`,
		},
		{
			name:          "err. not bearer",
			authorization: func(testServer) string { return "Basic abc" },
			mockBehavior:  func(r *service_mocks.MockServices) {},
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"message":"invalid authorization header"}`,
		},
		{
			name:          "err. garbage token",
			authorization: func(testServer) string { return "Bearer abc.def.ghi" },
			mockBehavior:  func(r *service_mocks.MockServices) {},
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"message":"could not validate credentials"}`,
		},
		{
			name: "err. refresh token as access",
			authorization: func(s testServer) string {
				pair, _ := s.tokens.Issue(alice)
				return "Bearer " + pair.RefreshToken
			},
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"could not validate credentials"}`,
		},
		{
			name: "err. account disabled after issue",
			authorization: func(s testServer) string {
				pair, _ := s.tokens.Issue(alice)
				return "Bearer " + pair.AccessToken
			},
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().Principal(gomock.Any(), alice.UserID).Return(auth.Principal{}, errs.ErrAccountDisabled)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"account is disabled or does not exist"}`,
		},
		{
			name: "ok",
			authorization: func(s testServer) string {
				pair, _ := s.tokens.Issue(alice)
				return "Bearer " + pair.AccessToken
			},
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().Principal(gomock.Any(), alice.UserID).Return(alice, nil)
				r.EXPECT().UserInfo(gomock.Any(), alice).Return(model.UserInfo{
					UserID:   alice.UserID,
					UserName: alice.Username,
					Email:    "alice@example.com",
					IsActive: true,
					Roles:    []string{"user"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(http.MethodGet, "/auth/getUserInfo", "", tt.authorization(s))

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_AdminOnly(t *testing.T) {
	t.Parallel()
	routes := []struct{ method, path, body string }{
		{http.MethodGet, "/users", ""},
		{http.MethodPost, "/books", `{"title":"t","author":"a","isbn":"1"}`},
		{http.MethodDelete, "/books/1", ""},
		{http.MethodPost, "/users/3/toggle-status", ""},
		{http.MethodGet, "/borrows/stats/summary", ""},
		{http.MethodGet, "/borrows/overdue/list", ""},
	}
	for _, rt := range routes {
		rt := rt
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			w := s.do(rt.method, rt.path, rt.body, s.as(t, alice))
			require.Equal(t, http.StatusForbidden, w.Code)
			require.JSONEq(t, `{"message":"not enough permissions"}`, w.Body.String())
		})
	}
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	due := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	type mockBehavior func(r *service_mocks.MockServices)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"book_id":7,"borrow_days":30}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					BorrowBook(gomock.Any(), alice, model.BorrowRequest{BookID: 7, BorrowDays: 30}).
					Return(model.BorrowCreated{Message: "book borrowed", BorrowID: 11, DueDate: due}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"book borrowed","borrow_id":11,"due_date":"2024-01-31T00:00:00Z"}`,
		},
		{
			name: "err. limit reached",
			body: `{"book_id":7}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					BorrowBook(gomock.Any(), alice, model.BorrowRequest{BookID: 7}).
					Return(model.BorrowCreated{}, errs.ErrBorrowLimitExceeded)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"borrow limit reached"}`,
		},
		{
			name: "err. book not found",
			body: `{"book_id":7}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					BorrowBook(gomock.Any(), alice, model.BorrowRequest{BookID: 7}).
					Return(model.BorrowCreated{}, errors.Wrap(errs.ErrBookNotFound, "borrow"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"borrow: book not found"}`,
		},
		{
			name: "err. someone else",
			body: `{"book_id":7,"user_id":3}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					BorrowBook(gomock.Any(), alice, gomock.Any()).
					Return(model.BorrowCreated{}, errs.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"not enough permissions"}`,
		},
		{
			name:         "err. period out of range",
			body:         `{"book_id":7,"borrow_days":400}`,
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. malformed json",
			body:         `{"book_id":`,
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "err. internal",
			body: `{"book_id":7}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					BorrowBook(gomock.Any(), alice, gomock.Any()).
					Return(model.BorrowCreated{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"db internal"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			token := s.as(t, alice)
			tt.mockBehavior(s.svc)

			w := s.do(http.MethodPost, "/borrows/borrow", tt.body, token)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_ReturnAndRenew(t *testing.T) {
	t.Parallel()
	returned := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

	t.Run("return", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		token := s.as(t, alice)
		note := "late"
		s.svc.EXPECT().
			ReturnBook(gomock.Any(), alice, int64(11), model.ReturnRequest{Notes: &note}).
			Return(model.ReturnResult{Message: "book returned", ReturnDate: returned, FineAmount: 3}, nil)

		w := s.do(http.MethodPost, "/borrows/11/return", `{"notes":"late"}`, token)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"message":"book returned","return_date":"2024-02-03T00:00:00Z","fine_amount":3}`, w.Body.String())
	})
	t.Run("return without body", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		token := s.as(t, alice)
		s.svc.EXPECT().
			ReturnBook(gomock.Any(), alice, int64(11), model.ReturnRequest{}).
			Return(model.ReturnResult{}, errs.ErrBorrowNotFound)

		w := s.do(http.MethodPost, "/borrows/11/return", "", token)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"message":"borrow record not found or already returned"}`, w.Body.String())
	})
	t.Run("renew overdue", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		token := s.as(t, alice)
		s.svc.EXPECT().
			RenewBook(gomock.Any(), alice, int64(11), model.RenewRequest{RenewalDays: 14}).
			Return(model.RenewResult{}, errs.ErrOverdueCannotRenew)

		w := s.do(http.MethodPost, "/borrows/11/renew", `{"renewal_days":14}`, token)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"message":"overdue book cannot be renewed"}`, w.Body.String())
	})
	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/borrows/abc/renew", `{}`, s.as(t, alice))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"message":"id is invalid"}`, w.Body.String())
	})
}

func TestHandler_ListBorrows(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockServices)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:  "ok. filters",
			query: "?page=2&page_size=5&book_id=7&status=borrowed&search=go&overdue_only=true",
			mockBehavior: func(r *service_mocks.MockServices) {
				bookID := int64(7)
				r.EXPECT().
					ListBorrows(gomock.Any(), alice, model.BorrowFilter{
						BookID:      &bookID,
						Status:      model.BorrowStatusBorrowed,
						Search:      "go",
						OverdueOnly: true,
					}, model.NewPager(2, 5)).
					Return(model.ListBorrows{Records: []model.BorrowDetails{}, Paging: model.Paging{Total: 0, Current: 2, Size: 5}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"records":[],"total":0,"current":2,"size":5}`,
		},
		{
			name:         "err. unknown status",
			query:        "?status=lost",
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"status is invalid"}`,
		},
		{
			name:         "err. page size too large",
			query:        "?page_size=1000",
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"page is out of range"}`,
		},
		{
			name:         "err. page offset overflows",
			query:        "?page=9223372036854775807&page_size=100",
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"page is out of range"}`,
		},
		{
			name:         "err. user id",
			query:        "?user_id=x",
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"user_id is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			token := s.as(t, alice)
			tt.mockBehavior(s.svc)

			w := s.do(http.MethodGet, "/borrows"+tt.query, "", token)

			require.Equal(t, tt.expectedCode, w.Code)
			require.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_UserBorrows(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.as(t, alice)
	s.svc.EXPECT().
		UserBorrows(gomock.Any(), alice, int64(3), model.BorrowStatusReturned).
		Return(nil, errs.ErrForbidden)

	w := s.do(http.MethodGet, "/borrows/user/3?status=returned", "", token)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateUser(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockServices)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		contains     string
	}{
		{
			name: "ok",
			body: `{"username":"carol","email":"carol@example.com","password":"secret1","phone":"13800138000"}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.UserCreate) (model.User, error) {
						return model.User{ID: 5, Username: req.Username, Email: req.Email, Phone: req.Phone, IsActive: true}, nil
					})
			},
			expectedCode: http.StatusCreated,
			contains:     `"username":"carol"`,
		},
		{
			name:         "err. weak password",
			body:         `{"username":"carol","email":"carol@example.com","password":"abcdef"}`,
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
			contains:     `'password' tag`,
		},
		{
			name:         "err. phone",
			body:         `{"username":"carol","email":"carol@example.com","password":"secret1","phone":"12345"}`,
			mockBehavior: func(r *service_mocks.MockServices) {},
			expectedCode: http.StatusBadRequest,
			contains:     `'phone' tag`,
		},
		{
			name: "err. duplicate",
			body: `{"username":"carol","email":"carol@example.com","password":"secret1"}`,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(model.User{}, errs.ErrDuplicateUsername)
			},
			expectedCode: http.StatusBadRequest,
			contains:     "username already exists",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			token := s.as(t, root)
			tt.mockBehavior(s.svc)

			w := s.do(http.MethodPost, "/users", tt.body, token)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestHandler_ToggleUserStatus(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.as(t, root)
	s.svc.EXPECT().ToggleUserStatus(gomock.Any(), root, int64(2)).Return(false, nil)

	w := s.do(http.MethodPost, "/users/2/toggle-status", "", token)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"user disabled","is_active":false}`, w.Body.String())
}

func TestHandler_DeleteBooks(t *testing.T) {
	t.Parallel()
	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		token := s.as(t, root)
		s.svc.EXPECT().DeleteBooks(gomock.Any(), []int64{1, 2}).Return(nil)

		w := s.do(http.MethodPost, "/books/batch-delete", `{"book_ids":[1,2]}`, token)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"message":"books deleted"}`, w.Body.String())
	})
	t.Run("err. empty", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/books/batch-delete", `{"book_ids":[]}`, s.as(t, root))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.as(t, alice)
	s.svc.EXPECT().
		ListBooks(gomock.Any(), model.BookFilter{Search: "go", Category: "cs"}, model.NewPager(1, 20)).
		Return(model.ListBooks{Records: []model.Book{}, Paging: model.Paging{Current: 1, Size: 20}}, nil)

	w := s.do(http.MethodGet, "/books?search=go&category=cs&size=20", "", token)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"records":[],"total":0,"current":1,"size":20}`, w.Body.String())
}

func TestHandler_ListWrappers(t *testing.T) {
	t.Parallel()
	due := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	type mockBehavior func(r *service_mocks.MockServices)

	var tests = []struct {
		name         string
		path         string
		caller       auth.Principal
		mockBehavior mockBehavior
		expectedBody string
	}{
		{
			name:   "categories",
			path:   "/books/categories/list",
			caller: alice,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().Categories(gomock.Any()).Return([]string{"sci-fi"}, nil)
			},
			expectedBody: `{"categories":["sci-fi"]}`,
		},
		{
			name:   "authors empty",
			path:   "/books/authors/list",
			caller: alice,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().Authors(gomock.Any()).Return(nil, nil)
			},
			expectedBody: `{"authors":[]}`,
		},
		{
			name:   "user borrows",
			path:   "/borrows/user/2",
			caller: alice,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().UserBorrows(gomock.Any(), alice, int64(2), model.BorrowStatus("")).Return(nil, nil)
			},
			expectedBody: `{"borrows":[]}`,
		},
		{
			name:   "overdue",
			path:   "/borrows/overdue/list",
			caller: root,
			mockBehavior: func(r *service_mocks.MockServices) {
				r.EXPECT().OverdueBorrows(gomock.Any()).Return([]model.OverdueBorrow{{
					ID: 1, UserID: 2, Username: "alice", Email: "alice@example.com",
					BookID: 7, BookTitle: "Dune", BookAuthor: "Herbert",
					BorrowDate: due.AddDate(0, 0, -30), DueDate: due, DaysOverdue: 3,
				}}, nil)
			},
			expectedBody: `{"overdue_borrows":[{"id":1,"user_id":2,"username":"alice","email":"alice@example.com","phone":null,` +
				`"book_id":7,"book_title":"Dune","book_author":"Herbert","borrow_date":"2024-01-01T00:00:00Z",` +
				`"due_date":"2024-01-31T00:00:00Z","renewal_count":0,"days_overdue":3}]}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			token := s.as(t, tt.caller)
			tt.mockBehavior(s.svc)

			w := s.do(http.MethodGet, tt.path, "", token)

			require.Equal(t, http.StatusOK, w.Code)
			require.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_UpdateUser_Self(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.as(t, root)
	inactive := false
	s.svc.EXPECT().
		UpdateUser(gomock.Any(), root, root.UserID, model.UserUpdate{IsActive: &inactive}).
		Return(model.User{}, errs.ErrSelfModification)

	w := s.do(http.MethodPut, "/users/1", `{"is_active":false}`, token)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"admin cannot disable or delete own account"}`, w.Body.String())
}

func TestHandler_CompatRoutes(t *testing.T) {
	t.Parallel()

	t.Run("refresh from header", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		s.svc.EXPECT().
			Refresh(gomock.Any(), "refresh-token").
			Return(auth.Tokens{AccessToken: "a", TokenType: auth.TokenTypeBearer, ExpiresIn: 60}, nil)

		w := s.do(http.MethodGet, "/auth/refresh", "", "Bearer refresh-token")

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"access_token":"a","token_type":"bearer","expires_in":60}`, w.Body.String())
	})
	t.Run("refresh from header missing", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/auth/refresh", "", "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("refreshToken alias", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		s.svc.EXPECT().Refresh(gomock.Any(), "r").Return(auth.Tokens{}, errs.ErrTokenExpired)

		w := s.do(http.MethodPost, "/auth/refreshToken", `{"refreshToken":"r"}`, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.JSONEq(t, `{"message":"token expired"}`, w.Body.String())
	})
	t.Run("getUser alias", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		token := s.as(t, alice)
		s.svc.EXPECT().UserInfo(gomock.Any(), alice).Return(model.UserInfo{UserID: 2, UserName: "alice", Roles: []string{"user"}}, nil)

		w := s.do(http.MethodGet, "/auth/getUser", "", token)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"userName":"alice"`)
	})
	t.Run("backend error", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/auth/error?code=E42&msg=boom", "", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"code":"E42","message":"boom"}`, w.Body.String())
	})
}
