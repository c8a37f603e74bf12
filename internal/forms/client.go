package forms

import "github.com/jask/revenda/internal/database/repository"

// Client form field keys.
const (
	FieldClientName       = "nome"
	FieldClientTaxID      = "cpf"
	FieldClientPhone      = "telefone"
	FieldClientEmail      = "email"
	FieldClientPostal     = "cep"
	FieldClientCity       = "cidade"
	FieldClientStreet     = "endereco"
	FieldClientDistrict   = "bairro"
	FieldClientComplement = "complemento"
)

const (
	sectionClient  = "Dados Pessoais"
	sectionAddress = "Endereço"
)

var clientFields = []Field{
	{Key: FieldClientName, Label: "Nome Completo", Section: sectionClient, Placeholder: "Nome do cliente", Required: true},
	{Key: FieldClientTaxID, Label: "CPF", Section: sectionClient, Placeholder: "000.000.000-00", Required: true},
	{Key: FieldClientPhone, Label: "Telefone / WhatsApp", Section: sectionClient, Placeholder: "(00) 00000-0000", Required: true},
	{Key: FieldClientEmail, Label: "E-mail", Section: sectionClient, Placeholder: "cliente@email.com", Required: true},
	{Key: FieldClientPostal, Label: "CEP", Section: sectionAddress, Placeholder: "00000-000"},
	{Key: FieldClientCity, Label: "Cidade", Section: sectionAddress},
	{Key: FieldClientStreet, Label: "Endereço Completo", Section: sectionAddress, Placeholder: "Rua, Número, Apto"},
	{Key: FieldClientDistrict, Label: "Bairro", Section: sectionAddress},
	{Key: FieldClientComplement, Label: "Complemento", Section: sectionAddress},
}

// ClientForm stages input for a new client.
type ClientForm struct {
	values values
}

func NewClientForm() *ClientForm { return &ClientForm{values: values{}} }

func (f *ClientForm) Fields() []Field { return clientFields }

func (f *ClientForm) Value(key string) string { return f.values.get(key) }

func (f *ClientForm) Set(key, value string) error { return f.values.set(clientFields, key, value) }

// Reset clears every field.
func (f *ClientForm) Reset() { f.values = values{} }

// Submit builds a client record with ID 0 for the store to assign.
// The form is cleared after a successful submit.
func (f *ClientForm) Submit() (repository.Client, error) {
	if err := f.values.checkRequired(clientFields); err != nil {
		return repository.Client{}, err
	}
	c := repository.Client{
		Name:  f.values.trimmed(FieldClientName),
		TaxID: f.values.trimmed(FieldClientTaxID),
		Phone: f.values.trimmed(FieldClientPhone),
		Email: f.values.trimmed(FieldClientEmail),
		Address: repository.Address{
			PostalCode: f.values.trimmed(FieldClientPostal),
			City:       f.values.trimmed(FieldClientCity),
			Street:     f.values.trimmed(FieldClientStreet),
			District:   f.values.trimmed(FieldClientDistrict),
			Complement: f.values.trimmed(FieldClientComplement),
		},
	}
	f.Reset()
	return c, nil
}
