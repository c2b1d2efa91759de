package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/cardworks/payment-gateway/internal/auth"
	"github.com/cardworks/payment-gateway/internal/config"
	"github.com/cardworks/payment-gateway/internal/domain"
	"github.com/cardworks/payment-gateway/internal/infrastructure/bank"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	testClientID     = "checkout-service"
	testClientSecret = "s3cret"
)

type HandlersTestSuite struct {
	suite.Suite
	repo      *services.MockPaymentRepository
	simulator *bank.Simulator
	mux       *http.ServeMux
}

func (s *HandlersTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.repo = services.NewMockPaymentRepository()
	s.simulator = bank.NewSimulator(decimal.NewFromInt(100))
	faults := bank.NewCardFaults()

	hash, err := bcrypt.GenerateFromPassword([]byte(testClientSecret), bcrypt.MinCost)
	s.Require().NoError(err)
	issuer := auth.NewTokenIssuer(&config.AuthConfig{
		JWTKey:           "test-key",
		Issuer:           "payment-gateway",
		Audience:         "payment-gateway-clients",
		TokenTTL:         time.Hour,
		ClientID:         testClientID,
		ClientSecretHash: string(hash),
	})

	h := handlers.NewHandlers(
		services.NewAuthorizeService(s.repo, faults, logger),
		services.NewCaptureService(s.repo, s.simulator, faults, logger),
		services.NewRefundService(s.repo, s.simulator, faults, logger),
		services.NewVoidService(s.repo, logger),
		services.NewQueryService(s.repo),
		issuer,
		logger,
	)

	s.mux = http.NewServeMux()
	h.Register(s.mux)
}

func (s *HandlersTestSuite) post(path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.mux.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlersTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	s.mux.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlersTestSuite) decode(recorder *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func (s *HandlersTestSuite) authorize(amount float64) string {
	recorder := s.post("/api/authorize", map[string]interface{}{
		"amount":          amount,
		"currency":        "EUR",
		"cardNumber":      "4000000000002115",
		"expirationMonth": 11,
		"expirationYear":  2031,
		"cvv":             100,
	})
	s.Require().Equal(http.StatusCreated, recorder.Code)

	body := s.decode(recorder)
	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func (s *HandlersTestSuite) errorCode(recorder *httptest.ResponseRecorder) string {
	body := s.decode(recorder)
	detail := body["error"].(map[string]interface{})
	return detail["code"].(string)
}

func (s *HandlersTestSuite) TestAuthorizeReturnsCreated() {
	recorder := s.post("/api/authorize", map[string]interface{}{
		"amount":          20,
		"currency":        "EUR",
		"cardNumber":      "4000000000002115",
		"expirationMonth": 11,
		"expirationYear":  2031,
		"cvv":             100,
	})

	s.Equal(http.StatusCreated, recorder.Code)
	body := s.decode(recorder)
	s.Equal(true, body["success"])

	data := body["data"].(map[string]interface{})
	s.NotEmpty(data["id"])
	s.Equal("EUR", data["currency"])
}

func (s *HandlersTestSuite) TestAuthorizeRejectsBadCard() {
	recorder := s.post("/api/authorize", map[string]interface{}{
		"amount":          20,
		"currency":        "EUR",
		"cardNumber":      "4000000000002116",
		"expirationMonth": 11,
		"expirationYear":  2031,
		"cvv":             100,
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("CARD_VALIDATION_FAILED", s.errorCode(recorder))
}

func (s *HandlersTestSuite) TestAuthorizeRejectsMalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/authorize", bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	s.mux.ServeHTTP(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("MALFORMED_REQUEST", s.errorCode(recorder))
}

func (s *HandlersTestSuite) TestCaptureReturnsRemainingHeadroom() {
	id := s.authorize(20)

	recorder := s.post("/api/capture", map[string]interface{}{
		"authorizationId": id,
		"amount":          5,
	})

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	data := body["data"].(map[string]interface{})
	s.Equal("15", data["amount"])
	s.Equal("EUR", data["currency"])
}

func (s *HandlersTestSuite) TestCaptureRequiresAuthorizationID() {
	recorder := s.post("/api/capture", map[string]interface{}{
		"amount": 5,
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("MALFORMED_REQUEST", s.errorCode(recorder))
}

func (s *HandlersTestSuite) TestCaptureUnknownPaymentIsNotFound() {
	recorder := s.post("/api/capture", map[string]interface{}{
		"authorizationId": "missing",
		"amount":          5,
	})

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal("PAYMENT_NOT_FOUND", s.errorCode(recorder))
}

func (s *HandlersTestSuite) TestNegativeAmountsAreAmountViolations() {
	id := s.authorize(20)

	capture := s.post("/api/capture", map[string]interface{}{
		"authorizationId": id,
		"amount":          -5,
	})
	s.Equal(http.StatusBadRequest, capture.Code)
	s.Equal("AMOUNT_VIOLATION", s.errorCode(capture))

	ok := s.post("/api/capture", map[string]interface{}{
		"authorizationId": id,
		"amount":          20,
	})
	s.Require().Equal(http.StatusOK, ok.Code)

	refund := s.post("/api/refund", map[string]interface{}{
		"authorizationId": id,
		"amount":          -30,
	})
	s.Equal(http.StatusBadRequest, refund.Code)
	s.Equal("AMOUNT_VIOLATION", s.errorCode(refund))

	// The captured amount never left the authorized envelope.
	query := s.get("/api/payments/" + id)
	data := s.decode(query)["data"].(map[string]interface{})
	s.Equal("20", data["capturedAmount"].(string))
}

func (s *HandlersTestSuite) TestCaptureAboveCeilingIsAmountViolation() {
	id := s.authorize(20)

	recorder := s.post("/api/capture", map[string]interface{}{
		"authorizationId": id,
		"amount":          25,
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("AMOUNT_VIOLATION", s.errorCode(recorder))
}

func (s *HandlersTestSuite) TestGatewayDeclinePersistsRejection() {
	id := s.authorize(150)

	recorder := s.post("/api/capture", map[string]interface{}{
		"authorizationId": id,
		"amount":          150,
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("AMOUNT_VIOLATION", s.errorCode(recorder))

	query := s.get("/api/payments/" + id)
	s.Equal(http.StatusOK, query.Code)
	body := s.decode(query)
	data := body["data"].(map[string]interface{})
	status := data["status"].(map[string]interface{})
	s.Equal("REJECTED", status["code"])
}

func (s *HandlersTestSuite) TestRefundThenVoidConflict() {
	id := s.authorize(20)

	capture := s.post("/api/capture", map[string]interface{}{
		"authorizationId": id,
		"amount":          20,
	})
	s.Require().Equal(http.StatusOK, capture.Code)

	refund := s.post("/api/refund", map[string]interface{}{
		"authorizationId": id,
		"amount":          5,
	})
	s.Equal(http.StatusOK, refund.Code)
	body := s.decode(refund)
	data := body["data"].(map[string]interface{})
	s.Equal("5", data["amount"])

	void := s.post("/api/void", map[string]interface{}{
		"authorizationId": id,
	})
	s.Equal(http.StatusBadRequest, void.Code)
	s.Equal("STATUS_CONFLICT", s.errorCode(void))
}

func (s *HandlersTestSuite) TestVoidReleasesFullAuthorizedAmount() {
	id := s.authorize(20)

	recorder := s.post("/api/void", map[string]interface{}{
		"authorizationId": id,
	})

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	data := body["data"].(map[string]interface{})
	s.Equal("20", data["amount"])
}

func (s *HandlersTestSuite) TestGetPaymentMasksCardNumber() {
	id := s.authorize(20)

	recorder := s.get("/api/payments/" + id)

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	data := body["data"].(map[string]interface{})
	s.Equal("************2115", data["cardNumber"])
	s.Equal("AUTHORIZED", data["status"].(map[string]interface{})["code"])
}

func (s *HandlersTestSuite) TestGetPaymentUnknownIsNotFound() {
	recorder := s.get("/api/payments/missing")

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal("PAYMENT_NOT_FOUND", s.errorCode(recorder))
}

func (s *HandlersTestSuite) TestLoginIssuesToken() {
	recorder := s.post("/api/login", map[string]interface{}{
		"clientId":     testClientID,
		"clientSecret": testClientSecret,
	})

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	data := body["data"].(map[string]interface{})
	s.NotEmpty(data["token"])
}

func (s *HandlersTestSuite) TestLoginRejectsWrongSecret() {
	recorder := s.post("/api/login", map[string]interface{}{
		"clientId":     testClientID,
		"clientSecret": "wrong",
	})

	s.Equal(http.StatusUnauthorized, recorder.Code)
	s.Equal("INVALID_CREDENTIALS", s.errorCode(recorder))
}

func (s *HandlersTestSuite) TestConcurrentModificationMapsToConflict() {
	id := s.authorize(20)

	// A second writer got there first; the stale save is rejected.
	s.repo.SaveFn = func(ctx context.Context, payment *domain.Payment) error {
		return domain.NewConcurrentModificationError(payment.ID)
	}

	recorder := s.post("/api/void", map[string]interface{}{
		"authorizationId": id,
	})

	s.Equal(http.StatusConflict, recorder.Code)
	s.Equal("CONCURRENT_MODIFICATION", s.errorCode(recorder))
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
