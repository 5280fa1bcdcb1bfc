/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	VerifierSvcComponent      Component = "verifier.service"
	VPVerifierComponent       Component = "verifier.vp-verifier"
	EnrollmentSvcComponent    Component = "enrollment.service"
	CertificateVCSvcComponent Component = "certificate-vc.service"
	TransactionStoreComponent Component = "transaction-store"
	HandshakeComponent        Component = "handshake"
	ProofSvcComponent         Component = "proof-service"
	DIDDocCacheComponent      Component = "diddoc-cache"
	RegistryClientComponent   Component = "registry-client"
	EnrollmentClientComponent Component = "enrollment-client"
	KMSComponent              Component = "kms"
	PolicyComponent           Component = "policy"
	RedisComponent            Component = "redis-service"
)
