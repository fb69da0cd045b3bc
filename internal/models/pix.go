package models

// PixKeyType is the closed set of PIX key variants
type PixKeyType string

const (
	PixKeyTypeCPF       PixKeyType = "CPF"
	PixKeyTypeCNPJ      PixKeyType = "CNPJ"
	PixKeyTypeEmail     PixKeyType = "EMAIL"
	PixKeyTypePhone     PixKeyType = "TELEFONE"
	PixKeyTypeRandomKey PixKeyType = "CHAVE_ALEATORIA"
)

// PixKeyTypes lists every PIX key type in display order
var PixKeyTypes = []PixKeyType{
	PixKeyTypeCPF,
	PixKeyTypeCNPJ,
	PixKeyTypeEmail,
	PixKeyTypePhone,
	PixKeyTypeRandomKey,
}

// PixKeyTypeNames returns the PIX key types as plain strings
func PixKeyTypeNames() []string {
	names := make([]string, len(PixKeyTypes))
	for i, keyType := range PixKeyTypes {
		names[i] = string(keyType)
	}
	return names
}
