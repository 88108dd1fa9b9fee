package donation

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/internal/apperror"
	"github.com/gracechapel/church-management-backend/internal/auditlog"
	"github.com/gracechapel/church-management-backend/internal/notification"
	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
	"github.com/gracechapel/church-management-backend/utils"
)

type Service interface {
	List(userID uint, status string) ([]Donation, error)
	Get(id uint) (*Donation, error)
	// Create records a completed offline donation (cash, check, card taken
	// in person). Online donations go through StartDonation instead.
	Create(ctx context.Context, req CreateDonationRequest, ip string) (*Donation, error)
	StartDonation(ctx context.Context, req CreateDonationRequest, ip string) (*StartDonationResponse, error)
	VerifyPayment(ctx context.Context, req VerifyPaymentRequest, ip string) (*Donation, error)
	Delete(id uint) error
}

type service struct {
	repo     *Repository
	users    *user.Repository
	client   *razorpay.Client
	cfg      *config.Config
	auditSvc auditlog.Service
}

func NewService(repo *Repository, users *user.Repository, cfg *config.Config, auditSvc auditlog.Service) Service {
	client := razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	return &service{
		repo:     repo,
		users:    users,
		client:   client,
		cfg:      cfg,
		auditSvc: auditSvc,
	}
}

func (s *service) List(userID uint, status string) ([]Donation, error) {
	return s.repo.List(userID, status)
}

func (s *service) Get(id uint) (*Donation, error) { return s.repo.FindByID(id) }

func (s *service) validate(req CreateDonationRequest) error {
	errs := validation.Errors{}
	if req.Amount == 0 {
		errs.Add("amount", "This field is required")
	} else {
		if req.Amount < 0.01 {
			errs.Add("amount", "Must be greater than or equal to 0.01")
		}
		if req.Amount > 1000000 {
			errs.Add("amount", "Donation amount exceeds maximum allowed")
		}
		// Tolerance absorbs float64 representation error on 2dp amounts.
		if math.Abs(req.Amount*100-math.Round(req.Amount*100)) > 1e-6 {
			errs.Add("amount", "Amount cannot have more than 2 decimal places")
		}
	}
	validation.OneOf(errs, "payment_method", req.Method, Methods...)
	validation.MaxLength(errs, "designation", req.Designation, 100)
	if err := errs.Err(); err != nil {
		return err
	}

	if req.UserID != nil {
		exists, err := s.users.Exists(*req.UserID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("user_id", "User does not exist")
			return errs
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateDonationRequest, ip string) (*Donation, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.Method == "online" {
		errs := validation.Errors{}
		errs.Add("payment_method", "Online donations must be started through the payment gateway")
		return nil, errs
	}

	now := time.Now()
	d := &Donation{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Method:      req.Method,
		Designation: req.Designation,
		Note:        req.Note,
		Status:      StatusSuccess,
		DonatedAt:   &now,
	}
	if err := s.repo.Create(d); err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, req.UserID, "DONATION_RECORDED", map[string]interface{}{
		"donation_id": d.ID,
		"amount":      d.Amount,
		"method":      d.Method,
		"designation": d.Designation,
	}, ip, "success")
	s.publishReceived(ctx, d)
	return d, nil
}

// StartDonation opens a Razorpay order and stores a pending record keyed by
// the order id. The record is finalized by VerifyPayment.
func (s *service) StartDonation(ctx context.Context, req CreateDonationRequest, ip string) (*StartDonationResponse, error) {
	req.Method = "online"
	if err := s.validate(req); err != nil {
		return nil, err
	}

	amountInPaise := int(math.Round(req.Amount * 100))
	data := map[string]interface{}{
		"amount":          amountInPaise,
		"currency":        "INR",
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"designation": req.Designation,
		},
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		s.auditSvc.LogAction(ctx, req.UserID, "DONATION_INITIATED", map[string]interface{}{
			"amount": req.Amount,
			"error":  err.Error(),
		}, ip, "failure")
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		s.auditSvc.LogAction(ctx, req.UserID, "DONATION_INITIATED", map[string]interface{}{
			"amount": req.Amount,
			"error":  "unable to extract order_id from Razorpay response",
		}, ip, "failure")
		return nil, errors.New("unable to extract order_id from Razorpay response")
	}

	d := &Donation{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Method:      "online",
		Designation: req.Designation,
		Note:        req.Note,
		Status:      StatusPending,
		OrderID:     orderID,
	}
	if err := s.repo.Create(d); err != nil {
		s.auditSvc.LogAction(ctx, req.UserID, "DONATION_INITIATED", map[string]interface{}{
			"amount":   req.Amount,
			"order_id": orderID,
			"error":    err.Error(),
		}, ip, "failure")
		return nil, fmt.Errorf("failed to create donation record: %w", err)
	}

	s.auditSvc.LogAction(ctx, req.UserID, "DONATION_INITIATED", map[string]interface{}{
		"amount":   req.Amount,
		"order_id": orderID,
	}, ip, "success")

	return &StartDonationResponse{
		OrderID:     orderID,
		Amount:      req.Amount,
		Currency:    "INR",
		RazorpayKey: s.cfg.RazorpayKey,
	}, nil
}

// VerifyPayment checks the gateway signature, fetches the payment, and moves
// the pending record to success or failed. Replayed verifications of an
// already-successful order are a no-op.
func (s *service) VerifyPayment(ctx context.Context, req VerifyPaymentRequest, ip string) (*Donation, error) {
	mac := hmac.New(sha256.New, []byte(s.cfg.RazorpaySecret))
	mac.Write([]byte(req.OrderID + "|" + req.PaymentID))
	computed := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(computed), []byte(req.RazorpaySig)) {
		s.auditSvc.LogAction(ctx, nil, "DONATION_VERIFICATION_FAILED", map[string]interface{}{
			"order_id":   req.OrderID,
			"payment_id": req.PaymentID,
			"reason":     "invalid payment signature",
		}, ip, "failure")
		return nil, fmt.Errorf("invalid payment signature: %w", apperror.ErrUnauthorized)
	}

	d, err := s.repo.FindByOrderID(req.OrderID)
	if err != nil {
		s.auditSvc.LogAction(ctx, nil, "DONATION_VERIFICATION_FAILED", map[string]interface{}{
			"order_id":   req.OrderID,
			"payment_id": req.PaymentID,
			"reason":     "donation record not found",
		}, ip, "failure")
		return nil, err
	}
	if d.Status == StatusSuccess {
		return d, nil
	}

	payment, err := s.client.Payment.Fetch(req.PaymentID, nil, nil)
	if err != nil {
		s.auditSvc.LogAction(ctx, d.UserID, "DONATION_VERIFICATION_FAILED", map[string]interface{}{
			"order_id":   req.OrderID,
			"payment_id": req.PaymentID,
			"error":      err.Error(),
		}, ip, "failure")
		return nil, fmt.Errorf("razorpay payment fetch failed: %w", err)
	}

	paymentStatus, _ := payment["status"].(string)

	var amount float64
	switch val := payment["amount"].(type) {
	case float64:
		amount = val / 100
	case json.Number:
		paise, _ := val.Float64()
		amount = paise / 100
	default:
		amount = d.Amount
	}

	newStatus := StatusFailed
	var donatedAt *time.Time
	auditAction := "DONATION_FAILED"
	auditStatus := "failure"
	if paymentStatus == "captured" {
		newStatus = StatusSuccess
		now := time.Now()
		donatedAt = &now
		auditAction = "DONATION_SUCCESS"
		auditStatus = "success"
	}

	err = s.repo.UpdatePaymentDetails(req.OrderID, PaymentUpdate{
		Status:    newStatus,
		PaymentID: &req.PaymentID,
		Amount:    amount,
		DonatedAt: donatedAt,
	})
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, d.UserID, auditAction, map[string]interface{}{
		"order_id":        req.OrderID,
		"payment_id":      req.PaymentID,
		"amount":          amount,
		"razorpay_status": paymentStatus,
	}, ip, auditStatus)

	d, err = s.repo.FindByOrderID(req.OrderID)
	if err != nil {
		return nil, err
	}
	if d.Status == StatusSuccess {
		s.publishReceived(ctx, d)
	}
	return d, nil
}

func (s *service) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *service) publishReceived(ctx context.Context, d *Donation) {
	ev := notification.Event{
		Type:   notification.TypeDonationReceived,
		UserID: d.UserID,
		Title:  "Donation received",
		Body:   fmt.Sprintf("Thank you for your donation of %.2f.", d.Amount),
	}
	if err := utils.PublishEvent(ctx, ev.Type, ev); err != nil {
		log.Printf("donation: could not publish receipt for donation %d: %v", d.ID, err)
	}
}
