package serializer

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type notes struct {
	Notes *string `json:"notes"`
}

func newContext(body io.Reader) echo.Context {
	r := httptest.NewRequest(http.MethodPost, "/", body)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(r, httptest.NewRecorder())
}

func TestJSONSerializer_Deserialize(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name     string
		body     io.Reader
		wantCode int
		want     notes
	}{
		{
			name: "ok",
			body: strings.NewReader(`{"notes":"late"}`),
			want: notes{Notes: func() *string { s := "late"; return &s }()},
		},
		{
			name: "ok. streamed empty body",
			body: http.NoBody,
		},
		{
			name: "ok. empty reader of unknown length",
			body: io.MultiReader(),
		},
		{
			name:     "err. malformed",
			body:     strings.NewReader(`{"notes":1}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got notes
			err := NewJSONSerializer().Deserialize(newContext(tt.body), &got)
			if tt.wantCode != 0 {
				var he *echo.HTTPError
				require.True(t, errors.As(err, &he))
				require.Equal(t, tt.wantCode, he.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestJSONSerializer_Serialize(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), w)

	require.NoError(t, NewJSONSerializer().Serialize(c, echo.Map{"message": "ok"}, ""))
	require.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}
