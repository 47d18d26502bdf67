package integrations

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"payroast/internal/app"
	"payroast/internal/models"
	"payroast/internal/pkg/logger"
	"payroast/internal/pkg/social"
	"payroast/internal/pkg/wallet"
	"payroast/internal/service"
	"payroast/internal/storage"

	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	db     *storage.Bolt
}

func (s *IntegrationTestSuite) SetupSuite() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger("info"); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	s.db, err = storage.NewBolt(filepath.Join(s.T().TempDir(), "payroast.db"), l)
	s.Require().NoError(err, "Error opening test store")

	appInstance := app.NewApp(s.db, wallet.NewSimulatedPayer(), social.NewIntentPoster(), l)
	serviceInstance := service.NewService(appInstance, "localhost:0", l)

	s.server = httptest.NewServer(serviceInstance.NewRouter())
	s.client = s.server.Client()
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.server.Close()
	s.db.Close()
}

func (s *IntegrationTestSuite) getToken(walletAddress string) string {
	reqBody, err := json.Marshal(models.AuthRequest{WalletAddress: walletAddress})
	s.Require().NoError(err, "Error marshaling authentication request")

	resp, err := s.client.Post(s.server.URL+"/api/auth", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error sending authentication request")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for authentication")

	var authResp models.AuthResponse
	err = json.NewDecoder(resp.Body).Decode(&authResp)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding authentication response")
	s.Require().NotEmpty(authResp.Token, "Token should not be empty")
	return authResp.Token
}

func (s *IntegrationTestSuite) doJSON(method, path, token string, payload interface{}, out interface{}) *http.Response {
	var body bytes.Buffer
	if payload != nil {
		s.Require().NoError(json.NewEncoder(&body).Encode(payload), "Error marshaling request payload")
	}

	req, err := http.NewRequest(method, s.server.URL+path, &body)
	s.Require().NoError(err, "Error creating request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing request")
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out), "Error decoding response")
	}
	return resp
}

func (s *IntegrationTestSuite) TestRoastLifecycle() {
	senderToken := s.getToken("sender-wallet-A")
	receiverToken := s.getToken("receiver-wallet-B")
	buyerToken := s.getToken("buyer-wallet-C")

	// Create a pending roast.
	var roast models.Roast
	resp := s.doJSON(http.MethodPost, "/api/roast", senderToken,
		models.CreateRoastRequest{Message: "x", Amount: 0.5, Currency: "sol"}, &roast)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for roast creation")
	s.Require().NotEmpty(roast.ID)
	s.Require().Equal(models.StatusPending, roast.Status)
	s.Require().Empty(roast.TransactionID)
	s.Require().Equal("sender-wallet-A", roast.SenderAddress)

	// Accept it as the receiver.
	var accepted models.Roast
	resp = s.doJSON(http.MethodPost, "/api/roast/"+roast.ID+"/accept", receiverToken, nil, &accepted)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for acceptance")
	s.Require().Equal(models.StatusAccepted, accepted.Status)
	s.Require().NotEmpty(accepted.TransactionID)

	// A second transition attempt must fail.
	resp = s.doJSON(http.MethodPost, "/api/roast/"+roast.ID+"/accept", receiverToken, nil, nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode, "Accepting twice must conflict")
	resp = s.doJSON(http.MethodPost, "/api/roast/"+roast.ID+"/reject", receiverToken, nil, nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode, "Rejecting an accepted roast must conflict")

	// The accepted roast shows up in the recent feed.
	var feed []models.Roast
	resp = s.doJSON(http.MethodGet, "/api/feed?category=recent&limit=10", "", nil, &feed)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	found := false
	for _, entry := range feed {
		if entry.ID == roast.ID {
			found = true
		}
	}
	s.Require().True(found, "Accepted roast should appear in the recent feed")

	// Engagement bumps likes and views.
	var engaged models.Roast
	resp = s.doJSON(http.MethodPost, "/api/roast/"+roast.ID+"/engage", "",
		models.EngageRequest{Likes: 1}, &engaged)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal(1, engaged.Likes)
	s.Require().Equal(1, engaged.Views)

	// Mint once, then fail on retry.
	var nft models.NFT
	resp = s.doJSON(http.MethodPost, "/api/nft/mint", buyerToken,
		models.MintRequest{RoastID: roast.ID, Price: 0.2}, &nft)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for the first mint")
	s.Require().Equal("buyer-wallet-C", nft.OwnerAddress)
	s.Require().NotEmpty(nft.TransactionID)

	resp = s.doJSON(http.MethodPost, "/api/nft/mint", buyerToken,
		models.MintRequest{RoastID: roast.ID, Price: 0.2}, nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode, "Expected status 409 for a duplicate mint")

	var minted models.MintedResponse
	resp = s.doJSON(http.MethodGet, "/api/roast/"+roast.ID+"/minted", "", nil, &minted)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().True(minted.Minted)

	var owned []models.NFT
	resp = s.doJSON(http.MethodGet, "/api/nfts/owner/buyer-wallet-C", "", nil, &owned)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(owned, 1)
}

func (s *IntegrationTestSuite) TestRejectFlow() {
	senderToken := s.getToken("sender-wallet-D")
	receiverToken := s.getToken("receiver-wallet-E")

	var roast models.Roast
	resp := s.doJSON(http.MethodPost, "/api/roast", senderToken,
		models.CreateRoastRequest{Message: "no thanks", Amount: 2, Currency: "usdc"}, &roast)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var rejected models.Roast
	resp = s.doJSON(http.MethodPost, "/api/roast/"+roast.ID+"/reject", receiverToken, nil, &rejected)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal(models.StatusRejected, rejected.Status)
	s.Require().Empty(rejected.TransactionID, "Rejection must not assign a transaction reference")

	// Rejected roasts never reach the feed.
	var feed []models.Roast
	resp = s.doJSON(http.MethodGet, "/api/feed?category=recent", "", nil, &feed)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	for _, entry := range feed {
		s.Require().NotEqual(roast.ID, entry.ID, "Rejected roast must not appear in the feed")
	}
}

func (s *IntegrationTestSuite) TestCurrencies() {
	var currencies []models.Currency
	resp := s.doJSON(http.MethodGet, "/api/currencies", "", nil, &currencies)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(currencies, 6)
	s.Require().Equal("sol", currencies[0].ID)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
