package forms

// Login form field keys.
const (
	FieldLoginCompany  = "cnpj"
	FieldLoginEmail    = "email"
	FieldLoginPassword = "senha"
)

var loginFields = []Field{
	{Key: FieldLoginCompany, Label: "CNPJ da Empresa", Placeholder: "00.000.000/0000-00", Required: true},
	{Key: FieldLoginEmail, Label: "E-mail", Placeholder: "admin@revenda.com", Required: true},
	{Key: FieldLoginPassword, Label: "Senha", Required: true, Secret: true},
}

// Credentials is the submitted login input.
type Credentials struct {
	CompanyTaxID string
	Email        string
	Password     string
}

// LoginForm stages the login screen input.
type LoginForm struct {
	values values
}

func NewLoginForm() *LoginForm { return &LoginForm{values: values{}} }

func (f *LoginForm) Fields() []Field { return loginFields }

func (f *LoginForm) Value(key string) string { return f.values.get(key) }

func (f *LoginForm) Set(key, value string) error { return f.values.set(loginFields, key, value) }

// Submit checks presence of every field. The company tax id is only checked
// for presence. The password is passed through untrimmed.
func (f *LoginForm) Submit() (Credentials, error) {
	if err := f.values.checkRequired(loginFields); err != nil {
		return Credentials{}, err
	}
	return Credentials{
		CompanyTaxID: f.values.trimmed(FieldLoginCompany),
		Email:        f.values.trimmed(FieldLoginEmail),
		Password:     f.values.get(FieldLoginPassword),
	}, nil
}
