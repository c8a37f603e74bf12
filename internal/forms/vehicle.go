package forms

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jask/revenda/internal/database/repository"
)

// Vehicle form field keys.
const (
	FieldModel         = "modelo"
	FieldPlate         = "placa"
	FieldPrice         = "preco"
	FieldYear          = "ano"
	FieldColor         = "cor"
	FieldRenavam       = "renavam"
	FieldChassis       = "chassi"
	FieldOdometer      = "km"
	FieldOwnerName     = "propNome"
	FieldOwnerTaxID    = "propCpf"
	FieldOwnerPhone    = "propTel"
	FieldOwnerPostal   = "propCep"
	FieldOwnerCity     = "propCidade"
	FieldOwnerStreet   = "propEnd"
	FieldOwnerDistrict = "propBairro"
)

// Placeholders used when editing a record that lacks registration data.
const (
	PlaceholderRenavam = "00000000000"
	PlaceholderChassis = "00000000000000000"
)

const (
	sectionVehicle = "Dados do Veículo"
	sectionOwner   = "Proprietário Anterior"
)

var vehicleFields = []Field{
	{Key: FieldModel, Label: "Modelo", Section: sectionVehicle, Placeholder: "Ex: Honda Civic 2.0", Required: true},
	{Key: FieldPlate, Label: "Placa", Section: sectionVehicle, Placeholder: "ABC-1234", Required: true},
	{Key: FieldPrice, Label: "Preço (R$)", Section: sectionVehicle, Placeholder: "0,00", Required: true},
	{Key: FieldYear, Label: "Ano Fab.", Section: sectionVehicle, Placeholder: "2023"},
	{Key: FieldColor, Label: "Cor", Section: sectionVehicle, Placeholder: "Prata"},
	{Key: FieldRenavam, Label: "Renavam", Section: sectionVehicle},
	{Key: FieldChassis, Label: "Chassi", Section: sectionVehicle},
	{Key: FieldOdometer, Label: "Quilometragem", Section: sectionVehicle},
	{Key: FieldOwnerName, Label: "Nome Completo", Section: sectionOwner},
	{Key: FieldOwnerTaxID, Label: "CPF", Section: sectionOwner},
	{Key: FieldOwnerPhone, Label: "Telefone", Section: sectionOwner},
	{Key: FieldOwnerPostal, Label: "CEP", Section: sectionOwner},
	{Key: FieldOwnerCity, Label: "Cidade", Section: sectionOwner},
	{Key: FieldOwnerStreet, Label: "Endereço", Section: sectionOwner},
	{Key: FieldOwnerDistrict, Label: "Bairro", Section: sectionOwner},
}

// VehicleForm stages input for creating or editing a vehicle.
type VehicleForm struct {
	initial *repository.Vehicle
	values  values
}

// NewVehicleForm returns an empty form, or one pre-populated from initial
// when editing.
func NewVehicleForm(initial *repository.Vehicle) *VehicleForm {
	f := &VehicleForm{values: values{}}
	if initial == nil {
		return f
	}
	v := *initial
	f.initial = &v
	f.values[FieldModel] = v.Model
	f.values[FieldPlate] = v.Plate
	f.values[FieldPrice] = formatCents(v.PriceCents)
	f.values[FieldYear] = optInt(v.Year)
	f.values[FieldOdometer] = optInt(v.Odometer)
	if v.Color != nil {
		f.values[FieldColor] = *v.Color
	}
	f.values[FieldRenavam] = orDefault(v.Renavam, PlaceholderRenavam)
	f.values[FieldChassis] = orDefault(v.Chassis, PlaceholderChassis)
	o := v.PreviousOwner
	f.values[FieldOwnerName] = o.Name
	f.values[FieldOwnerTaxID] = o.TaxID
	f.values[FieldOwnerPhone] = o.Phone
	f.values[FieldOwnerPostal] = o.PostalCode
	f.values[FieldOwnerCity] = o.City
	f.values[FieldOwnerStreet] = o.Street
	f.values[FieldOwnerDistrict] = o.District
	return f
}

// Editing reports whether the form targets an existing record.
func (f *VehicleForm) Editing() bool { return f.initial != nil }

// Initial returns the record being edited, or nil.
func (f *VehicleForm) Initial() *repository.Vehicle { return f.initial }

func (f *VehicleForm) Title() string {
	if f.Editing() {
		return "Editar Veículo"
	}
	return "Cadastro de Veículo"
}

func (f *VehicleForm) SubmitLabel() string {
	if f.Editing() {
		return "Atualizar Veículo"
	}
	return "Salvar Veículo"
}

func (f *VehicleForm) Fields() []Field { return vehicleFields }

func (f *VehicleForm) Value(key string) string { return f.values.get(key) }

func (f *VehicleForm) Set(key, value string) error { return f.values.set(vehicleFields, key, value) }

// Submit builds the vehicle record. When editing, the record keeps its ID
// and status; a new record gets ID 0, for the store to assign, and starts
// out available.
func (f *VehicleForm) Submit() (repository.Vehicle, error) {
	if err := f.values.checkRequired(vehicleFields); err != nil {
		return repository.Vehicle{}, err
	}
	v := repository.Vehicle{
		Model:      f.values.trimmed(FieldModel),
		Plate:      f.values.trimmed(FieldPlate),
		Status:     repository.StatusAvailable,
		PriceCents: parseCents(f.values.get(FieldPrice)),
		Year:       parseOptInt(f.values.get(FieldYear)),
		Odometer:   parseOptInt(f.values.get(FieldOdometer)),
		Renavam:    f.values.trimmed(FieldRenavam),
		Chassis:    f.values.trimmed(FieldChassis),
		PreviousOwner: repository.Owner{
			Name:       f.values.trimmed(FieldOwnerName),
			TaxID:      f.values.trimmed(FieldOwnerTaxID),
			Phone:      f.values.trimmed(FieldOwnerPhone),
			PostalCode: f.values.trimmed(FieldOwnerPostal),
			Street:     f.values.trimmed(FieldOwnerStreet),
			District:   f.values.trimmed(FieldOwnerDistrict),
			City:       f.values.trimmed(FieldOwnerCity),
		},
	}
	if c := f.values.trimmed(FieldColor); c != "" {
		v.Color = &c
	}
	if f.initial != nil {
		v.ID = f.initial.ID
		v.Status = f.initial.Status
	}
	return v, nil
}

// thousandsOnly matches pt-BR digit grouping without a decimal part, as in "145.000".
var thousandsOnly = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// parseCents reads a price typed as "145000", "145.000", "145000,50" or
// "145.000,50". Unreadable, negative or out of range input counts as zero.
func parseCents(raw string) int64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case thousandsOnly.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	cents := math.Round(f * 100)
	if cents >= math.MaxInt64 {
		return 0
	}
	return int64(cents)
}

func parseOptInt(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func formatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', -1, 64)
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
