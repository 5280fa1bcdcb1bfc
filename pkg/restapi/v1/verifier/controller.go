/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package verifier_test -source=controller.go -mock_names verifierService=MockVerifierService,enrollmentService=MockEnrollmentService,certificateService=MockCertificateService

package verifier

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics/noop"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
	"github.com/trustbloc/did-verifier/pkg/restapi/v1/util"
	"github.com/trustbloc/did-verifier/pkg/service/certificatevc"
	verifiersvc "github.com/trustbloc/did-verifier/pkg/service/verifier"
)

// BasePath is the prefix of every verifier route.
const BasePath = "/verifier/api/v1"

var logger = log.New("verifier-restapi")

type verifierService interface {
	RequestOffer(ctx context.Context, req *verifiersvc.OfferRequest) (*verifiersvc.OfferResponse, error)
	RequestProfile(ctx context.Context, req *verifiersvc.ProfileRequest) (*verifiersvc.ProfileResponse, error)
	RequestVerify(ctx context.Context, req *verifiersvc.VerifyRequest) (*verifiersvc.VerifyResponse, error)
	ConfirmVerify(ctx context.Context, req *verifiersvc.ConfirmRequest) (*verifiersvc.ConfirmResponse, error)
}

type enrollmentService interface {
	EnrollEntity(ctx context.Context) (*certificatevc.CertificateVC, error)
}

type certificateService interface {
	Current(ctx context.Context) (*certificatevc.CertificateVC, error)
}

// Config holds the services behind the controller.
type Config struct {
	VerifierSvc    verifierService
	EnrollmentSvc  enrollmentService
	CertificateSvc certificateService
	Metrics        metrics.Metrics
}

// Controller for the verifier API.
type Controller struct {
	verifierSvc    verifierService
	enrollmentSvc  enrollmentService
	certificateSvc certificateService
	metrics        metrics.Metrics
}

// NewController creates a new controller for the verifier API.
func NewController(config *Config) *Controller {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Controller{
		verifierSvc:    config.VerifierSvc,
		enrollmentSvc:  config.EnrollmentSvc,
		certificateSvc: config.CertificateSvc,
		metrics:        m,
	}
}

// RegisterHandlers adds the verifier routes to router.
func RegisterHandlers(router *echo.Group, c *Controller) {
	router.POST("/request-offer-qr", c.PostRequestOfferQR)
	router.POST("/request-profile", c.PostRequestProfile)
	router.POST("/request-verify", c.PostRequestVerify)
	router.POST("/confirm-verify", c.PostConfirmVerify)
	router.POST("/certificate-vc", c.PostCertificateVC)
	router.GET("/certificate-vc", c.GetCertificateVC)
}

// PostRequestOfferQR creates a transaction and returns the offer matching the policy.
// (POST /verifier/api/v1/request-offer-qr).
func (c *Controller) PostRequestOfferQR(ctx echo.Context) error {
	var body verifiersvc.OfferRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if err := required(map[string]string{
		"mode": body.Mode, "device": body.Device, "service": body.Service,
	}); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.verifierSvc.RequestOffer(ctx.Request().Context(), &body))
}

// PostRequestProfile returns the signed verify profile of a transaction.
// (POST /verifier/api/v1/request-profile).
func (c *Controller) PostRequestProfile(ctx echo.Context) error {
	var body verifiersvc.ProfileRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if err := required(map[string]string{"id": body.ID}); err != nil {
		return err
	}

	if body.TxID == "" && body.OfferID == "" {
		return resterr.Newf(resterr.RequestBodyUnreadable, "one of txId and offerId is required")
	}

	return util.WriteOutput(ctx)(c.verifierSvc.RequestProfile(ctx.Request().Context(), &body))
}

// PostRequestVerify submits the encrypted presentation.
// (POST /verifier/api/v1/request-verify).
func (c *Controller) PostRequestVerify(ctx echo.Context) error {
	var body verifiersvc.VerifyRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if err := required(map[string]string{
		"id":               body.ID,
		"txId":             body.TxID,
		"encVp":            body.EncVP,
		"accE2e.publicKey": body.AccE2E.PublicKey,
		"accE2e.iv":        body.AccE2E.IV,
	}); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.verifierSvc.RequestVerify(ctx.Request().Context(), &body))
}

// PostConfirmVerify reports the outcome of an offer.
// (POST /verifier/api/v1/confirm-verify).
func (c *Controller) PostConfirmVerify(ctx echo.Context) error {
	var body verifiersvc.ConfirmRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if err := required(map[string]string{"offerId": body.OfferID}); err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.verifierSvc.ConfirmVerify(ctx.Request().Context(), &body))
}

// PostCertificateVC enrolls the verifier with the enrollment authority.
// (POST /verifier/api/v1/certificate-vc).
func (c *Controller) PostCertificateVC(ctx echo.Context) error {
	cert, err := c.enrollmentSvc.EnrollEntity(ctx.Request().Context())
	if err != nil {
		return err
	}

	logger.Info("Certificate VC issued", log.WithVCID(cert.VCID))

	return util.WriteOutput(ctx)(struct{}{}, nil)
}

// GetCertificateVC returns the current certificate VC as issued.
// (GET /verifier/api/v1/certificate-vc).
func (c *Controller) GetCertificateVC(ctx echo.Context) error {
	start := time.Now()
	defer func() { c.metrics.ServiceCallTime(metrics.APICertificateVC, time.Since(start)) }()

	cert, err := c.certificateSvc.Current(ctx.Request().Context())
	if err != nil {
		return util.WriteRawOutputWithContentType(ctx)(nil, "",
			resterr.Wrap(err, resterr.FailedToRequestCertificateVC))
	}

	return util.WriteRawOutputWithContentType(ctx)([]byte(cert.VC), echo.MIMEApplicationJSON, nil)
}

func required(fields map[string]string) error {
	var missing []string

	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)

	return resterr.New(resterr.RequestBodyUnreadable,
		errors.New("missing required fields: "+strings.Join(missing, ", ")))
}
