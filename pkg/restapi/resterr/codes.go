/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import "net/http"

// ErrorCode is the stable machine-readable code returned to peers.
type ErrorCode string

// General.
const (
	RequestBodyUnreadable       ErrorCode = "SSRVVRF00100"
	JSONParseError              ErrorCode = "SSRVVRF00101"
	BlockchainGetDIDDocFailed   ErrorCode = "SSRVVRF00102"
	SignatureVerificationFailed ErrorCode = "SSRVVRF00103"
	GenerateHashFailed          ErrorCode = "SSRVVRF00104"
	EncodingFailed              ErrorCode = "SSRVVRF00105"
	DecodingFailed              ErrorCode = "SSRVVRF00106"
)

// VP.
const (
	VPOfferNotFound         ErrorCode = "SSRVVRF00200"
	VPPolicyNotFound        ErrorCode = "SSRVVRF00201"
	VPVerifyError           ErrorCode = "SSRVVRF00202"
	VPProfileNotFound       ErrorCode = "SSRVVRF00203"
	VPProfileParseError     ErrorCode = "SSRVVRF00204"
	VerifyProfileParseError ErrorCode = "SSRVVRF00205"
	VPPolicyReadError       ErrorCode = "SSRVVRF00206"
)

// Transaction.
const (
	TransactionNotFound    ErrorCode = "SSRVVRF00300"
	TransactionInvalid     ErrorCode = "SSRVVRF00301"
	TransactionExpired     ErrorCode = "SSRVVRF00302"
	SubTransactionNotFound ErrorCode = "SSRVVRF00303"
	SubTransactionInvalid  ErrorCode = "SSRVVRF00304"
)

// Auth and crypto.
const (
	InvalidAuthType                  ErrorCode = "SSRVVRF00400"
	CryptoError                      ErrorCode = "SSRVVRF00401"
	InvalidNonce                     ErrorCode = "SSRVVRF00402"
	InvalidProofPurpose              ErrorCode = "SSRVVRF00403"
	CryptoNonceMergeFailed           ErrorCode = "SSRVVRF00404"
	CryptoSharedSecretFailed         ErrorCode = "SSRVVRF00405"
	CryptoSharedSecretNonceMergeFail ErrorCode = "SSRVVRF00406"
	GenerateNonceFailed              ErrorCode = "SSRVVRF00407"
	CryptoKeyPairGenerationFailed    ErrorCode = "SSRVVRF00408"
	CryptoDecryptionFailed           ErrorCode = "SSRVVRF00409"
	InvalidECCCurveType              ErrorCode = "SSRVVRF00410"
	InvalidSymmetricCipherType       ErrorCode = "SSRVVRF00411"
	InvalidSymmetricPaddingType      ErrorCode = "SSRVVRF00412"
)

// Wallet and keys.
const (
	WalletConnectionFailed          ErrorCode = "SSRVVRF00500"
	WalletSignatureGenerationFailed ErrorCode = "SSRVVRF00501"
	PublicKeyCompressFailed         ErrorCode = "SSRVVRF00502"
	FailedToGetFileWalletManager    ErrorCode = "SSRVVRF00503"
)

// DID.
const (
	DIDDocumentRetrievalFailed ErrorCode = "SSRVVRF00600"
	FailedToFindDIDDoc         ErrorCode = "SSRVVRF00601"
)

// E2E.
const (
	E2ENotFound ErrorCode = "SSRVVRF00700"
	AccE2EError ErrorCode = "SSRVVRF00701"
)

// Certificate.
const (
	CertificateDataNotFound ErrorCode = "SSRVVRF00800"
)

// Per-API umbrella codes.
const (
	FailedToRequestOfferQR       ErrorCode = "SSRVVRF00900"
	FailedToConfirmVerify        ErrorCode = "SSRVVRF00901"
	FailedToRequestProfile       ErrorCode = "SSRVVRF00902"
	FailedToRequestVerify        ErrorCode = "SSRVVRF00903"
	FailedToRequestCertificateVC ErrorCode = "SSRVVRF00904"
	FailedToIssueCertificateVC   ErrorCode = "SSRVVRF00905"
)

type codeInfo struct {
	message string
	status  int
}

//nolint:gochecknoglobals
var codeTable = map[ErrorCode]codeInfo{
	RequestBodyUnreadable:       {"Unable to process the request.", http.StatusBadRequest},
	JSONParseError:              {"Failed to parse JSON.", http.StatusInternalServerError},
	BlockchainGetDIDDocFailed:   {"Failed to retrieve DID document on the blockchain.", http.StatusInternalServerError},
	SignatureVerificationFailed: {"Failed to verify signature.", http.StatusInternalServerError},
	GenerateHashFailed:          {"Failed to generate hash.", http.StatusInternalServerError},
	EncodingFailed:              {"Failed to encode data.", http.StatusInternalServerError},
	DecodingFailed:              {"Failed to decode data : incorrect encoding", http.StatusBadRequest},

	VPOfferNotFound:         {"VP_OFFER is not found.", http.StatusBadRequest},
	VPPolicyNotFound:        {"VP_POLICY is not found.", http.StatusBadRequest},
	VPVerifyError:           {"VP verification failed.", http.StatusInternalServerError},
	VPProfileNotFound:       {"VP_PROFILE is not found.", http.StatusInternalServerError},
	VPProfileParseError:     {"Failed to parse VP profile.", http.StatusInternalServerError},
	VerifyProfileParseError: {"Failed to parse verify profile.", http.StatusInternalServerError},
	VPPolicyReadError:       {"Failed to read VP policy.", http.StatusInternalServerError},

	TransactionNotFound:    {"Transaction not found.", http.StatusBadRequest},
	TransactionInvalid:     {"Transaction status is not pending.", http.StatusBadRequest},
	TransactionExpired:     {"Transaction has expired.", http.StatusBadRequest},
	SubTransactionNotFound: {"Subtransaction not found.", http.StatusBadRequest},
	SubTransactionInvalid:  {"Subtransaction status is invalid.", http.StatusBadRequest},

	InvalidAuthType:                  {"Invalid AuthType: Type mismatch.", http.StatusBadRequest},
	CryptoError:                      {"Crypto error occurred.", http.StatusInternalServerError},
	InvalidNonce:                     {"Invalid nonce.", http.StatusBadRequest},
	InvalidProofPurpose:              {"Invalid proof purpose.", http.StatusBadRequest},
	CryptoNonceMergeFailed:           {"Failed to merge nonce.", http.StatusInternalServerError},
	CryptoSharedSecretFailed:         {"Failed to generate shared secret.", http.StatusInternalServerError},
	CryptoSharedSecretNonceMergeFail: {"Failed to merge shared secret and nonce.", http.StatusInternalServerError},
	GenerateNonceFailed:              {"Failed to generate nonce.", http.StatusInternalServerError},
	CryptoKeyPairGenerationFailed:    {"Failed to generate key pair.", http.StatusInternalServerError},
	CryptoDecryptionFailed:           {"Failed to decrypt data.", http.StatusInternalServerError},
	InvalidECCCurveType:              {"Invalid ECC curve type.", http.StatusInternalServerError},
	InvalidSymmetricCipherType:       {"Invalid symmetric cipher type.", http.StatusInternalServerError},
	InvalidSymmetricPaddingType:      {"Invalid symmetric padding type.", http.StatusInternalServerError},

	WalletConnectionFailed:          {"Failed to connect to wallet.", http.StatusInternalServerError},
	WalletSignatureGenerationFailed: {"Failed to generate wallet signature.", http.StatusInternalServerError},
	PublicKeyCompressFailed:         {"Failed to compress public key.", http.StatusInternalServerError},
	FailedToGetFileWalletManager:    {"Failed to get File Wallet Manager.", http.StatusInternalServerError},

	DIDDocumentRetrievalFailed: {"Failed to retrieve DID Document.", http.StatusInternalServerError},
	FailedToFindDIDDoc:         {"Failed to find DID document.", http.StatusInternalServerError},

	E2ENotFound: {"E2E is not found.", http.StatusBadRequest},
	AccE2EError: {"E2E is invalid.", http.StatusBadRequest},

	CertificateDataNotFound: {"Certificate VC data not found.", http.StatusInternalServerError},

	FailedToRequestOfferQR:       {"Failed to process the 'request-offer-qr' API request.", http.StatusInternalServerError},
	FailedToConfirmVerify:        {"Failed to process the 'confirm-verify' API request.", http.StatusInternalServerError},
	FailedToRequestProfile:       {"Failed to process the 'request-profile' API request.", http.StatusInternalServerError},
	FailedToRequestVerify:        {"Failed to process the 'request-verify' API request.", http.StatusInternalServerError},
	FailedToRequestCertificateVC: {"Failed to process the 'get-certificate-vc' API request.", http.StatusInternalServerError},
	FailedToIssueCertificateVC:   {"Failed to process the 'issue-certificate-vc' API request.", http.StatusInternalServerError},
}

// Message returns the fixed human message of the code.
func (c ErrorCode) Message() string {
	return codeTable[c].message
}

// HTTPStatus returns the status the code is answered with; 4xx codes are client faults.
func (c ErrorCode) HTTPStatus() int {
	if info, ok := codeTable[c]; ok {
		return info.status
	}

	return http.StatusInternalServerError
}

// ClientFault reports whether the code blames the caller.
func (c ErrorCode) ClientFault() bool {
	return c.HTTPStatus() < http.StatusInternalServerError
}
