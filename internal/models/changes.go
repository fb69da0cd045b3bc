package models

// ReceiverChanges holds the columns a patch writes; nil fields are left untouched
type ReceiverChanges struct {
	CompletedName *string
	CpfCnpj       *string
	Email         *string
	PixKeyType    *PixKeyType
	PixKey        *string
}

// IsEmpty reports whether no column would be written
func (c ReceiverChanges) IsEmpty() bool {
	return c.CompletedName == nil &&
		c.CpfCnpj == nil &&
		c.Email == nil &&
		c.PixKeyType == nil &&
		c.PixKey == nil
}

// ProjectPatch decides which requested changes are applied to a receiver in the
// given status. A validated receiver only accepts a new email; a draft accepts
// every supplied field, with the PIX pair flattened into its two columns.
func ProjectPatch(status ReceiverStatus, req PatchReceiverRequest) ReceiverChanges {
	if status == ReceiverStatusValidated {
		return ReceiverChanges{Email: req.Email}
	}

	changes := ReceiverChanges{
		CompletedName: req.CompletedName,
		CpfCnpj:       req.CpfCnpj,
		Email:         req.Email,
	}
	if req.PixData != nil {
		keyType := req.PixData.PixKeyType
		key := req.PixData.PixKey
		changes.PixKeyType = &keyType
		changes.PixKey = &key
	}
	return changes
}
