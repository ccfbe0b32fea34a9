package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
)

// pool tags of the stable serialization
const (
	saplingPoolTag byte = 0x00
	orchardPoolTag byte = 0x01
)

// ClaimNullifier returns the claim nullifier recorded inside the tagged
// claim statement.
func (t *ClaimTransaction) ClaimNullifier() (Nullifier, error) {
	stmt, err := t.Claim.Statement()
	if err != nil {
		return Nullifier{}, err
	}
	return stmt.ClaimNullifier, nil
}

// Serialize produces the stable byte encoding of the transaction: output
// material, the tagged claim statement with its public inputs, the optional
// equivalence commitments and the binding signature. Same transaction, same
// bytes, across save/load cycles.
func (t *ClaimTransaction) Serialize() ([]byte, error) {
	stmt, err := t.Claim.Statement()
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.Write(t.Output.ValueCommitment[:])
	buf.Write(t.Output.NoteCommitment[:])
	buf.Write(t.Output.EphemeralKey[:])

	switch t.Claim.Pool {
	case PoolSapling:
		buf.WriteByte(saplingPoolTag)
	case PoolOrchard:
		buf.WriteByte(orchardPoolTag)
	}
	buf.Write(stmt.Root[:])
	buf.Write(stmt.ValueCommitment[:])
	buf.Write(stmt.ClaimNullifier[:])
	buf.Write(stmt.RandomizedKey[:])
	binary.Write(buf, binary.LittleEndian, uint32(len(stmt.NullifierSnapshot)))
	for _, nf := range stmt.NullifierSnapshot {
		buf.Write(nf[:])
	}
	binary.Write(buf, binary.LittleEndian, uint32(len(stmt.Proof)))
	buf.Write(stmt.Proof)

	buf.Write(t.Mint.ConvertRoot[:])
	buf.Write(t.Mint.ValueCommitment[:])
	buf.Write(t.Mint.RecipientKey[:])

	if t.Equivalence != nil {
		buf.WriteByte(0x01)
		buf.Write(t.Equivalence.SaplingValueCommitment[:])
		buf.Write(t.Equivalence.OrchardValueCommitment[:])
		binary.Write(buf, binary.LittleEndian, uint32(len(t.Equivalence.Proof)))
		buf.Write(t.Equivalence.Proof)
	} else {
		buf.WriteByte(0x00)
	}

	buf.Write(t.BindingSig[:])
	return buf.Bytes(), nil
}

// Hash returns the hex-encoded SHA256 of the serialized transaction.
func (t *ClaimTransaction) Hash() (string, error) {
	raw, err := t.Serialize()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Encode marshals the whole transaction for file exchange between the
// create and verify commands.
func (t *ClaimTransaction) Encode() ([]byte, error) {
	if _, err := t.Claim.Statement(); err != nil {
		return nil, err
	}
	return json.Marshal(t)
}

// DecodeClaimTransaction parses a transaction previously produced by Encode.
func DecodeClaimTransaction(raw []byte) (*ClaimTransaction, error) {
	tx := &ClaimTransaction{}
	if err := json.Unmarshal(raw, tx); err != nil {
		return nil, err
	}
	if _, err := tx.Claim.Statement(); err != nil {
		return nil, err
	}
	return tx, nil
}
