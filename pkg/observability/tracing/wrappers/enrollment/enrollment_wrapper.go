/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package enrollment . Service

package enrollment

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/did-verifier/pkg/service/certificatevc"
)

type Service interface {
	EnrollEntity(ctx context.Context) (*certificatevc.CertificateVC, error)
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) EnrollEntity(ctx context.Context) (*certificatevc.CertificateVC, error) {
	ctx, span := w.tracer.Start(ctx, "enrollment.EnrollEntity")
	defer span.End()

	cert, err := w.svc.EnrollEntity(ctx)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("vc_id", cert.VCID))

	return cert, nil
}
