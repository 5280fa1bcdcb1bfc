/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"

	"github.com/trustbloc/did-verifier/pkg/doc/did"
	"github.com/trustbloc/did-verifier/pkg/doc/profile"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/proof"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

type didResolver interface {
	Resolve(ctx context.Context, didOrKeyURL string) (*did.Document, error)
}

type statusChecker interface {
	CheckVCStatus(ctx context.Context, vcID string) error
}

// VPVerifier checks presentations against the DID documents of their holder and issuers and
// against the filter of a verify profile. Proofs are checked over the raw JSON so that members
// unknown to the model stay covered by the signature.
type VPVerifier struct {
	resolver didResolver
	status   statusChecker
	now      func() time.Time
}

// NewVPVerifier returns a presentation verifier. A nil status checker disables credential
// status checks.
func NewVPVerifier(resolver didResolver, status statusChecker) *VPVerifier {
	return &VPVerifier{
		resolver: resolver,
		status:   status,
		now:      time.Now,
	}
}

// Verify parses and verifies the raw presentation.
func (v *VPVerifier) Verify(ctx context.Context, raw []byte, filter *profile.Filter) (*vc.Presentation, error) {
	pres, err := vc.ParsePresentation(raw)
	if err != nil {
		return nil, resterr.New(resterr.VPVerifyError, err).WithComponent(resterr.VPVerifierComponent)
	}

	if err = v.verify(ctx, raw, pres, filter); err != nil {
		return nil, resterr.New(resterr.VPVerifyError, err).WithComponent(resterr.VPVerifierComponent)
	}

	return pres, nil
}

func (v *VPVerifier) verify(ctx context.Context, raw []byte, pres *vc.Presentation, filter *profile.Filter) error {
	if len(pres.VerifiableCredential) == 0 {
		return fmt.Errorf("presentation has no credentials")
	}

	if err := vc.CheckValidity(pres.ValidFrom, pres.ValidUntil, v.now()); err != nil {
		return fmt.Errorf("presentation: %w", err)
	}

	holder, err := v.resolve(ctx, pres.Holder)
	if err != nil {
		return fmt.Errorf("holder: %w", err)
	}

	if err = verifyPresentationProofs(raw, pres, holder); err != nil {
		return err
	}

	for i, cred := range pres.VerifiableCredential {
		credRaw := []byte(gjson.GetBytes(raw, "verifiableCredential."+strconv.Itoa(i)).Raw)

		if err = v.verifyCredential(ctx, credRaw, cred, filter); err != nil {
			return fmt.Errorf("credential %s: %w", cred.ID, err)
		}
	}

	return nil
}

func (v *VPVerifier) verifyCredential(ctx context.Context, raw []byte, cred *vc.Credential,
	filter *profile.Filter) error {
	issuer, err := v.resolve(ctx, cred.Issuer.ID)
	if err != nil {
		return fmt.Errorf("issuer: %w", err)
	}

	if cred.Proof == nil {
		return fmt.Errorf("no proof")
	}

	if len(cred.Proof.ProofValueList) > 0 {
		err = verifyDisclosedClaims(raw, cred, issuer)
	} else {
		err = verifyWithDocument(raw, cred.Proof, issuer)
	}

	if err != nil {
		return err
	}

	if err = vc.CheckValidity(cred.ValidFrom, cred.ValidUntil, v.now()); err != nil {
		return err
	}

	if err = checkFilter(cred, filter); err != nil {
		return err
	}

	if v.status != nil {
		if err = v.status.CheckVCStatus(ctx, cred.ID); err != nil {
			return err
		}
	}

	return nil
}

func (v *VPVerifier) resolve(ctx context.Context, didID string) (*did.Document, error) {
	doc, err := v.resolver.Resolve(ctx, didID)
	if err != nil {
		return nil, err
	}

	if doc.Deactivated {
		return nil, fmt.Errorf("did %s is deactivated", doc.ID)
	}

	return doc, nil
}

// verifyPresentationProofs checks the holder's proof. A presentation signed with several
// authentication factors carries one "proofs" entry per factor; each entry is checked as if it
// were the only proof.
func verifyPresentationProofs(raw []byte, pres *vc.Presentation, holder *did.Document) error {
	if pres.Proof == nil && len(pres.Proofs) == 0 {
		return fmt.Errorf("presentation has no proof")
	}

	if pres.Proof != nil {
		if err := verifyWithDocument(raw, pres.Proof, holder); err != nil {
			return fmt.Errorf("presentation proof: %w", err)
		}
	}

	for i, p := range pres.Proofs {
		single, err := withSingleProof(raw, i)
		if err != nil {
			return err
		}

		if err = verifyWithDocument(single, p, holder); err != nil {
			return fmt.Errorf("presentation proof %d: %w", i, err)
		}
	}

	return nil
}

func withSingleProof(raw []byte, i int) ([]byte, error) {
	v, err := fastjson.ParseBytes(raw)
	if err != nil {
		return nil, resterr.New(resterr.JSONParseError, err)
	}

	p := v.Get("proofs", strconv.Itoa(i))
	if p == nil {
		return nil, fmt.Errorf("proof %d not found", i)
	}

	v.Del("proofs")
	v.Set("proof", p)

	return v.MarshalTo(nil), nil
}

// verifyDisclosedClaims checks a selectively disclosable credential. Entry i of the proof value
// list signs the credential reduced to its i-th claim.
func verifyDisclosedClaims(raw []byte, cred *vc.Credential, issuer *did.Document) error {
	claims := cred.CredentialSubject.Claims
	if len(claims) != len(cred.Proof.ProofValueList) {
		return fmt.Errorf("%d claims but %d proof values", len(claims), len(cred.Proof.ProofValueList))
	}

	var arena fastjson.Arena

	for i := range claims {
		v, err := fastjson.ParseBytes(raw)
		if err != nil {
			return resterr.New(resterr.JSONParseError, err)
		}

		claim := v.Get("credentialSubject", "claims", strconv.Itoa(i))
		subject := v.Get("credentialSubject")
		p := v.Get("proof")

		if claim == nil || subject == nil || p == nil {
			return fmt.Errorf("claim %d not found", i)
		}

		single := arena.NewArray()
		single.SetArrayItem(0, claim)
		subject.Set("claims", single)

		p.Del("proofValueList")
		p.Set("proofValue", arena.NewString(cred.Proof.ProofValueList[i]))

		if err = verifyWithDocument(v.MarshalTo(nil), cred.Proof, issuer); err != nil {
			return fmt.Errorf("claim %s: %w", claims[i].Code, err)
		}

		arena.Reset()
	}

	return nil
}

func verifyWithDocument(raw []byte, p *vc.Proof, doc *did.Document) error {
	u, err := did.ParseKeyURL(p.VerificationMethod)
	if err != nil {
		return err
	}

	if u.DID != doc.ID {
		return fmt.Errorf("proof key %s does not belong to %s", p.VerificationMethod, doc.ID)
	}

	vm, err := doc.VerificationMethodByID(p.VerificationMethod)
	if err != nil {
		return err
	}

	pub, err := vm.PublicKey()
	if err != nil {
		return err
	}

	curve, err := vm.Curve()
	if err != nil {
		return err
	}

	return proof.Verify(raw, pub, curve)
}

func checkFilter(cred *vc.Credential, filter *profile.Filter) error {
	schema, ok := filter.SchemaByID(cred.CredentialSchema.ID)
	if !ok {
		return fmt.Errorf("schema %q is not accepted", cred.CredentialSchema.ID)
	}

	if len(schema.AllowedIssuers) > 0 && !lo.Contains(schema.AllowedIssuers, cred.Issuer.ID) {
		return fmt.Errorf("issuer %s is not allowed for schema %s", cred.Issuer.ID, schema.ID)
	}

	codes := lo.Map(cred.CredentialSubject.Claims, func(c vc.Claim, _ int) string { return c.Code })

	if missing, _ := lo.Difference(schema.RequiredClaims, codes); len(missing) > 0 {
		return fmt.Errorf("required claims missing: %v", missing)
	}

	return nil
}
