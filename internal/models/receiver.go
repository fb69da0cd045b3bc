package models

import (
	"time"
)

// ReceiverStatus is the lifecycle state of a receiver
type ReceiverStatus string

const (
	ReceiverStatusDraft     ReceiverStatus = "Rascunho"
	ReceiverStatusValidated ReceiverStatus = "Validado"
)

// SearchPageSize is the fixed number of receivers returned per search page
const SearchPageSize = 10

// Receiver represents a PIX receiver record
type Receiver struct {
	ID            int64          `bson:"_id" json:"id"`
	CompletedName string         `bson:"completed_name" json:"completed_name" example:"John Doe"`
	CpfCnpj       string         `bson:"cpf_cnpj" json:"cpf_cnpj" example:"473.234.678-22"`
	Email         string         `bson:"email" json:"email" example:"JOHN@EXAMPLE.COM"`
	PixKeyType    PixKeyType     `bson:"pix_key_type" json:"pix_key_type" enums:"CPF,CNPJ,EMAIL,TELEFONE,CHAVE_ALEATORIA"`
	PixKey        string         `bson:"pix_key" json:"pix_key" example:"473.234.678-22"`
	Status        ReceiverStatus `bson:"status" json:"status" enums:"Validado,Rascunho"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}

// BeforeCreate sets the creation and update timestamps and the initial status
func (r *Receiver) BeforeCreate() {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Status = ReceiverStatusDraft
}

// BeforeUpdate sets the update timestamp
func (r *Receiver) BeforeUpdate() {
	r.UpdatedAt = time.Now().UTC()
}

// Apply copies every set field of the changes into the receiver
func (r *Receiver) Apply(changes ReceiverChanges) {
	if changes.CompletedName != nil {
		r.CompletedName = *changes.CompletedName
	}
	if changes.CpfCnpj != nil {
		r.CpfCnpj = *changes.CpfCnpj
	}
	if changes.Email != nil {
		r.Email = *changes.Email
	}
	if changes.PixKeyType != nil {
		r.PixKeyType = *changes.PixKeyType
	}
	if changes.PixKey != nil {
		r.PixKey = *changes.PixKey
	}
}

// PixData is the typed PIX key pair submitted by clients.
// pix_key is checked against pix_key_type by a struct-level rule.
type PixData struct {
	PixKeyType PixKeyType `json:"pix_key_type" binding:"required,oneof=CPF CNPJ EMAIL TELEFONE CHAVE_ALEATORIA" enums:"CPF,CNPJ,EMAIL,TELEFONE,CHAVE_ALEATORIA" example:"CPF"`
	PixKey     string     `json:"pix_key" binding:"max=140" example:"719.805.580-00"`
}

// CreateReceiverRequest represents the request body for creating a receiver
type CreateReceiverRequest struct {
	Email         string   `json:"email,omitempty" binding:"omitempty,max=250,upper_email" example:"JHON_DOE@EXAMPLE.COM"`
	CompletedName string   `json:"completed_name" binding:"required" example:"Jhon Doe"`
	CpfCnpj       string   `json:"cpf_cnpj" binding:"required,cpf_cnpj" example:"719.805.580-00"`
	PixData       *PixData `json:"pix_data" binding:"required"`
}

// ToReceiver builds a draft receiver from the request, flattening the PIX pair
func (req CreateReceiverRequest) ToReceiver() *Receiver {
	receiver := &Receiver{
		CompletedName: req.CompletedName,
		CpfCnpj:       req.CpfCnpj,
		Email:         req.Email,
	}
	if req.PixData != nil {
		receiver.PixKeyType = req.PixData.PixKeyType
		receiver.PixKey = req.PixData.PixKey
	}
	return receiver
}

// PatchReceiverRequest represents the request body for patching a receiver.
// Pointers distinguish omitted fields from provided ones.
type PatchReceiverRequest struct {
	ID            int64    `json:"id" binding:"required,min=1" example:"1"`
	Email         *string  `json:"email,omitempty" binding:"omitempty,max=250,patch_email" example:"JHON_DOE@EXAMPLE.COM"`
	CompletedName *string  `json:"completed_name,omitempty" binding:"omitempty,min=1" example:"Jhon Doe"`
	CpfCnpj       *string  `json:"cpf_cnpj,omitempty" binding:"omitempty,min=1,cpf_cnpj" example:"719.805.580-00"`
	PixData       *PixData `json:"pix_data,omitempty" binding:"omitempty"`
}

// RemoveManyReceiversRequest represents the request body for bulk removal
type RemoveManyReceiversRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,unique,dive,gt=0" example:"1,2,3"`
}

// SearchReceiversQuery holds the query string of a search
type SearchReceiversQuery struct {
	Q    string `form:"q"`
	Page int    `form:"page,default=1" binding:"min=1"`
}

// SearchReceiversResult represents one page of search results
type SearchReceiversResult struct {
	Values          []Receiver `json:"values"`
	TotalPages      int        `json:"totalPages" example:"1"`
	TotalCount      int64      `json:"totalCount" example:"1"`
	QuantityPerPage int        `json:"quantityPerPage" example:"10"`
}

// TotalPages returns how many pages of the given size hold count records
func TotalPages(count int64, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}
