package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gratia-labs/patron-ledger/internal/reconcile"
	"github.com/gratia-labs/patron-ledger/internal/settlement"
	"github.com/gratia-labs/patron-ledger/internal/wallet"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetWallet retrieves a wallet's stamp and rate snapshot
	// GET /api/v1/wallets/:payment_id?currency=<code>&refresh=<bool>
	GetWallet(c *gin.Context)

	// SettleContribution settles a signed contribution
	// PUT /api/v1/wallets/:payment_id/contributions
	SettleContribution(c *gin.Context)

	// GetAddressBalance retrieves the settled balance for an address
	// GET /api/v1/addresses/:address/balance
	GetAddressBalance(c *gin.Context)

	// RecordPledge records a claimed external fiat charge
	// PUT /api/v1/addresses/:address/pledges
	RecordPledge(c *gin.Context)

	// UpdatePledge applies a processor event to a pledge
	// PATCH /api/v1/addresses/:address/pledges/:transaction_id
	UpdatePledge(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	settlement *settlement.Engine
	reconcile  *reconcile.Engine
	wallets    *wallet.Service
}

// NewHandler creates a new REST API handler
func NewHandler(settlementEngine *settlement.Engine, reconcileEngine *reconcile.Engine, walletService *wallet.Service) Handler {
	return &handler{
		settlement: settlementEngine,
		reconcile:  reconcileEngine,
		wallets:    walletService,
	}
}

// GetWallet retrieves a wallet's stamp and rate snapshot
func (h *handler) GetWallet(c *gin.Context) {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		respondBadRequest(c, "Payment ID is required")
		return
	}

	refresh := c.Query("refresh") == "true"
	currency := c.Query("currency")

	info, err := h.wallets.Read(c.Request.Context(), paymentID, currency, refresh)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// SettleContribution settles a signed contribution
func (h *handler) SettleContribution(c *gin.Context) {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		respondBadRequest(c, "Payment ID is required")
		return
	}

	var req ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.settlement.Settle(c.Request.Context(), settlement.SettleRequest{
		PaymentID:  paymentID,
		SignedTx:   req.SignedTx,
		SurveyorID: req.SurveyorID,
		ViewingID:  req.ViewingID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAddressBalance retrieves the settled balance for an address
func (h *handler) GetAddressBalance(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Address is required")
		return
	}

	balance, err := h.wallets.AddressBalance(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Address:     address,
		Satoshis:    balance.Satoshis,
		Confirmed:   balance.Confirmed,
		Unconfirmed: balance.Unconfirmed,
	})
}

// RecordPledge records a claimed external fiat charge
func (h *handler) RecordPledge(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Address is required")
		return
	}

	var req PledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	err := h.reconcile.RecordPledge(c.Request.Context(), reconcile.RecordPledgeRequest{
		Address:       address,
		TransactionID: req.TransactionID,
		Actor:         req.Actor,
		Amount:        req.Amount,
		Fee:           req.Fee,
		Currency:      req.Currency,
		Status:        req.Status,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UpdatePledge applies a processor event to a pledge
func (h *handler) UpdatePledge(c *gin.Context) {
	address := c.Param("address")
	transactionID := c.Param("transaction_id")
	if address == "" || transactionID == "" {
		respondBadRequest(c, "Address and transaction ID are required")
		return
	}

	var req PledgeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	err := h.reconcile.UpdatePledge(c.Request.Context(), reconcile.UpdatePledgeRequest{
		Address:       address,
		TransactionID: transactionID,
		EventID:       req.EventID,
		Status:        req.Status,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
