package app

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bennettdavid04/simply-invest/internal/config"
	"github.com/bennettdavid04/simply-invest/internal/store"
	"github.com/bennettdavid04/simply-invest/pkg/dto"
)

func newTestApp() App {
	return App{
		Config: &config.Config{
			PrivateKey:       "testkey",
			AuthDisabledURLs: []string{"/login", "/register"},
		},
		Store: store.NewMemory(),
	}
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("error encoding request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func TestRegisterLoginScenario(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "alice", Age: 20, Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer ") {
		t.Fatal("register did not return a bearer token")
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "ALICE", Age: 30, Password: "other"})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want %d", rec.Code, http.StatusConflict)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "kid", Age: 12, Password: "secret"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("underage register status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/login", "", dto.Auth{Login: "alice", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password login status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/login", "", dto.Auth{Login: "alice", Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer ") {
		t.Fatal("login did not return a bearer token")
	}
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodGet, "/api/user/balance", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthExemptionIgnoresQueryString(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "alice", Age: 20, Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}

	// a query value ending in an exempt suffix must not skip the token check
	req := httptest.NewRequest(http.MethodGet, "/api/user/balance?x=/login", nil)
	req.Header.Set("User-Login", "alice")

	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec2.Code, http.StatusUnauthorized)
	}
}

func TestForgedLoginHeaderWithoutToken(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "alice", Age: 20, Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
	req.Header.Set("User-Login", "alice")

	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec2.Code, http.StatusUnauthorized)
	}
}

func TestForgedLoginHeaderCannotSwitchAccounts(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "alice", Age: 20, Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}
	aliceToken := strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer ")

	rec = doJSON(t, router, http.MethodPost, "/api/user/portfolio/buy", aliceToken, dto.BuyRequest{Symbol: "AAPL", Amount: 1000})
	if rec.Code != http.StatusOK {
		t.Fatalf("buy status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "bob", Age: 30, Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}
	bobToken := strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer ")

	// the identity comes from the verified token, never from the header
	req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	req.Header.Set("User-Login", "alice")

	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK {
		t.Fatalf("balance status = %d", rec2.Code)
	}
	balance := decode[dto.Balance](t, rec2)
	if balance.Current != 100000 {
		t.Errorf("balance = %v, want bob's 100000, not alice's 99000", balance.Current)
	}
}

func TestInvestmentScenario(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "alice", Age: 20, Password: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d", rec.Code)
	}
	token := strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer ")

	rec = doJSON(t, router, http.MethodGet, "/api/stocks", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stocks status = %d", rec.Code)
	}
	quotes := decode[[]dto.Quote](t, rec)
	if len(quotes) != 8 {
		t.Fatalf("catalog size = %d, want 8", len(quotes))
	}
	if quotes[0].Symbol != "AAPL" || quotes[0].Price != 150 {
		t.Errorf("first quote = %+v, want AAPL seeded at 150", quotes[0])
	}

	rec = doJSON(t, router, http.MethodGet, "/api/user/balance", token, nil)
	balance := decode[dto.Balance](t, rec)
	if balance.Current != 100000 {
		t.Errorf("starting balance = %v, want 100000", balance.Current)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/portfolio/buy", token, dto.BuyRequest{Symbol: "AAPL", Amount: 1000})
	if rec.Code != http.StatusOK {
		t.Fatalf("buy status = %d", rec.Code)
	}
	bought := decode[dto.BuyResponse](t, rec)
	if bought.Price != 150 {
		t.Errorf("buy price = %v, want 150", bought.Price)
	}
	if math.Abs(bought.Quantity-1000.0/150.0) > 0.0001 {
		t.Errorf("buy quantity = %v, want ≈ %v", bought.Quantity, 1000.0/150.0)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/user/balance", token, nil)
	balance = decode[dto.Balance](t, rec)
	if balance.Current != 99000 {
		t.Errorf("post-buy balance = %v, want 99000", balance.Current)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/portfolio/buy", token, dto.BuyRequest{Symbol: "AAPL", Amount: 200000})
	if rec.Code != http.StatusPaymentRequired {
		t.Errorf("overdraft buy status = %d, want %d", rec.Code, http.StatusPaymentRequired)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/user/portfolio/5", token, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("out-of-range sell status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/user/portfolio/0", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("sell status = %d", rec.Code)
	}
	sold := decode[dto.SellResponse](t, rec)

	// the sale refreshes the price, so proceeds move with the walk but stay
	// within one ±5% step of quantity × 150
	low, high := bought.Quantity*150*0.95-0.01, bought.Quantity*150*1.05+0.01
	if sold.Proceeds < low || sold.Proceeds > high {
		t.Errorf("proceeds = %v, want within [%v, %v]", sold.Proceeds, low, high)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/user/portfolio", token, nil)
	portfolio := decode[dto.Portfolio](t, rec)
	if len(portfolio.Holdings) != 0 {
		t.Errorf("holdings = %d, want 0 after selling out", len(portfolio.Holdings))
	}
	if math.Abs(portfolio.Balance-(99000+sold.Proceeds)) > 0.01 {
		t.Errorf("final balance = %v, want %v", portfolio.Balance, 99000+sold.Proceeds)
	}
}

func TestRevalueEndpoint(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "bob", Age: 25, Password: "secret"})
	token := strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer ")

	rec = doJSON(t, router, http.MethodPost, "/api/user/portfolio/buy", token, dto.BuyRequest{Symbol: "MSFT", Amount: 300})
	if rec.Code != http.StatusOK {
		t.Fatalf("buy status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/user/portfolio/revalue", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("revalue status = %d", rec.Code)
	}
	portfolio := decode[dto.Portfolio](t, rec)
	if len(portfolio.Holdings) != 1 {
		t.Fatalf("holdings = %d, want 1", len(portfolio.Holdings))
	}

	holding := portfolio.Holdings[0]
	if holding.ReferencePrice < 300*0.95-0.01 || holding.ReferencePrice > 300*1.05+0.01 {
		t.Errorf("rebased reference price = %v, want within one step of 300", holding.ReferencePrice)
	}
	if math.Abs(holding.InvestedAmount-holding.Quantity*holding.ReferencePrice) > 0.01 {
		t.Errorf("invested = %v, want quantity × reference price = %v", holding.InvestedAmount, holding.Quantity*holding.ReferencePrice)
	}
}

func TestLessonsEndpoint(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "eve", Age: 40, Password: "secret"})
	token := strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer ")

	rec = doJSON(t, router, http.MethodGet, "/api/lessons", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("lessons status = %d", rec.Code)
	}
	lessons := decode[[]dto.Lesson](t, rec)
	if len(lessons) == 0 {
		t.Fatal("lesson catalog is empty")
	}

	rec = doJSON(t, router, http.MethodGet, "/api/lessons/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("lesson status = %d", rec.Code)
	}
	lesson := decode[dto.Lesson](t, rec)
	if lesson.ID != 1 || lesson.Body == "" {
		t.Errorf("lesson = %+v, want ID 1 with a body", lesson)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/lessons/999", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing lesson status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestLogout(t *testing.T) {
	router := newTestApp().Router()

	rec := doJSON(t, router, http.MethodPost, "/api/user/register", "", dto.Register{Login: "carol", Age: 22, Password: "secret"})
	token := strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer ")

	rec = doJSON(t, router, http.MethodPost, "/api/user/logout", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("logout status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
