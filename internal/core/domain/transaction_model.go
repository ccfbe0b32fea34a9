package domain

// ClaimTransaction is a full claim transaction: a tagged claim statement, the
// destination output and mint descriptions, an optional cross-pool
// equivalence statement and a binding signature.
//
// Invariant: ClaimNullifier() equals the nullifier recorded inside the claim
// statement, and is unique across all accepted transactions of a wallet.
type ClaimTransaction struct {
	Claim       ClaimDescription
	Output      OutputDescription
	Mint        MintDescription
	Equivalence *EquivalenceStatement
	BindingSig  BindingSignature
}
