package http

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testTokenSignKey = "test-sign-key"
	testTokenIssuer  = "contact-keeper-test"
)

// newTestHandler builds a Handler whose services are gomock doubles, wired
// with a nop logger.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockContactService, *mock.MockGroupService) {
	t.Helper()

	contactSvc := mock.NewMockContactService(ctrl)
	groupSvc := mock.NewMockGroupService(ctrl)

	appInfoSvc := mock.NewMockAppInfoService(ctrl)
	appInfoSvc.EXPECT().GetAppVersion(gomock.Any()).Return("test").AnyTimes()

	cfg := config.App{
		TokenSignKey:  testTokenSignKey,
		TokenIssuer:   testTokenIssuer,
		TokenDuration: time.Minute,
		Version:       "test",
	}

	h := NewHandler(
		&service.Services{
			ContactService: contactSvc,
			GroupService:   groupSvc,
			AppInfoService: appInfoSvc,
		},
		cfg,
		logger.Nop(),
	)

	return h, contactSvc, groupSvc
}

// grantToken mints a bearer token carrying the given grants, signed with the
// test handler's key.
func grantToken(t *testing.T, grants models.Grants) string {
	t.Helper()

	token, err := utils.GenerateGrantToken(testTokenIssuer, grants, time.Minute, testTokenSignKey)
	require.NoError(t, err)

	return token
}

// doRequest runs a request through the handler's full router, so middleware
// and URL-param extraction behave as in production.
func doRequest(t *testing.T, h *Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, bodyReader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	return rec
}

func fullGrants(t *testing.T) string {
	t.Helper()
	return grantToken(t, models.Grants{ReadContacts: true, WriteContacts: true})
}

func intPointer(i int) *int { return &i }

func strPointer(s string) *string { return &s }
