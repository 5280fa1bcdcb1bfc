/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package verifier . Service

package verifier

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/did-verifier/pkg/observability/tracing/attributeutil"
	verifiersvc "github.com/trustbloc/did-verifier/pkg/service/verifier"
)

type Service interface {
	RequestOffer(ctx context.Context, req *verifiersvc.OfferRequest) (*verifiersvc.OfferResponse, error)
	RequestProfile(ctx context.Context, req *verifiersvc.ProfileRequest) (*verifiersvc.ProfileResponse, error)
	RequestVerify(ctx context.Context, req *verifiersvc.VerifyRequest) (*verifiersvc.VerifyResponse, error)
	ConfirmVerify(ctx context.Context, req *verifiersvc.ConfirmRequest) (*verifiersvc.ConfirmResponse, error)
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) RequestOffer(ctx context.Context, req *verifiersvc.OfferRequest) (*verifiersvc.OfferResponse, error) {
	ctx, span := w.tracer.Start(ctx, "verifier.RequestOffer")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("request", req))

	resp, err := w.svc.RequestOffer(ctx, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("tx_id", resp.TxID))

	if resp.Payload != nil {
		span.SetAttributes(attribute.String("offer_id", resp.Payload.OfferID))
	}

	return resp, nil
}

func (w *Wrapper) RequestProfile(ctx context.Context,
	req *verifiersvc.ProfileRequest) (*verifiersvc.ProfileResponse, error) {
	ctx, span := w.tracer.Start(ctx, "verifier.RequestProfile")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", req.TxID))
	span.SetAttributes(attribute.String("offer_id", req.OfferID))

	resp, err := w.svc.RequestProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (w *Wrapper) RequestVerify(ctx context.Context,
	req *verifiersvc.VerifyRequest) (*verifiersvc.VerifyResponse, error) {
	ctx, span := w.tracer.Start(ctx, "verifier.RequestVerify")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", req.TxID))
	span.SetAttributes(attributeutil.JSON("request", req,
		attributeutil.WithRedacted("encVp"),
		attributeutil.WithRedacted("accE2e.proof.proofValue"),
	))

	resp, err := w.svc.RequestVerify(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (w *Wrapper) ConfirmVerify(ctx context.Context,
	req *verifiersvc.ConfirmRequest) (*verifiersvc.ConfirmResponse, error) {
	ctx, span := w.tracer.Start(ctx, "verifier.ConfirmVerify")
	defer span.End()

	span.SetAttributes(attribute.String("offer_id", req.OfferID))

	resp, err := w.svc.ConfirmVerify(ctx, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Bool("result", resp.Result))

	return resp, nil
}
