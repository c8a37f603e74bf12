package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry resolves key names to actions per screen scope. Scopes that
// host text inputs only bind non-printable keys so typing is never captured.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal    = "global"
	scopeLogin     = "login"
	scopeSidebar   = "sidebar"
	scopeDashboard = "dashboard"
	scopeInventory = "inventory"
	scopeSearch    = "search"
	scopeForm      = "form"
	scopeNotice    = "notice"
)

const (
	actionQuit        Action = "quit"
	actionNavigate    Action = "navigate"
	actionUp          Action = "up"
	actionDown        Action = "down"
	actionSelect      Action = "select"
	actionBack        Action = "back"
	actionNextField   Action = "next_field"
	actionPrevField   Action = "prev_field"
	actionSubmit      Action = "submit"
	actionClear       Action = "clear"
	actionSearch      Action = "search"
	actionClearSearch Action = "clear_search"
	actionNextStatus  Action = "next_status"
	actionPrevStatus  Action = "prev_status"
	actionEdit        Action = "edit"
	actionExportCSV   Action = "export_csv"
	actionExportPDF   Action = "export_pdf"
	actionDismiss     Action = "dismiss"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "sair")

	// Login: tab, enter
	reg(scopeLogin, actionNextField, []string{"tab", "down"}, "próximo campo")
	reg(scopeLogin, actionPrevField, []string{"shift+tab", "up"}, "campo anterior")
	reg(scopeLogin, actionSubmit, []string{"enter"}, "entrar")

	// Sidebar: j/k, enter, q
	reg(scopeSidebar, actionUp, []string{"k", "up"}, "subir")
	reg(scopeSidebar, actionDown, []string{"j", "down"}, "descer")
	reg(scopeSidebar, actionSelect, []string{"enter", "l", "right"}, "abrir")
	reg(scopeSidebar, actionQuit, []string{"q"}, "sair")

	reg(scopeDashboard, actionBack, []string{"esc", "h", "left"}, "menu")
	reg(scopeDashboard, actionQuit, []string{"q"}, "sair")

	// Inventory: /, h/l, enter, c, p, esc
	reg(scopeInventory, actionSearch, []string{"/"}, "buscar")
	reg(scopeInventory, actionPrevStatus, []string{"h", "left"}, "status anterior")
	reg(scopeInventory, actionNextStatus, []string{"l", "right"}, "próximo status")
	reg(scopeInventory, actionEdit, []string{"enter", "e"}, "editar")
	reg(scopeInventory, actionExportCSV, []string{"c"}, "exportar CSV")
	reg(scopeInventory, actionExportPDF, []string{"p"}, "exportar PDF")
	reg(scopeInventory, actionClearSearch, []string{"x"}, "limpar busca")
	reg(scopeInventory, actionBack, []string{"esc"}, "menu")
	reg(scopeInventory, actionQuit, []string{"q"}, "sair")

	reg(scopeSearch, actionSelect, []string{"enter"}, "aplicar")
	reg(scopeSearch, actionClearSearch, []string{"esc"}, "limpar")

	// Forms: tab, shift+tab, ctrl+s, ctrl+l, esc
	reg(scopeForm, actionNextField, []string{"tab", "down"}, "próximo campo")
	reg(scopeForm, actionPrevField, []string{"shift+tab", "up"}, "campo anterior")
	reg(scopeForm, actionSubmit, []string{"ctrl+s", "enter"}, "salvar")
	reg(scopeForm, actionClear, []string{"ctrl+l"}, "limpar")
	reg(scopeForm, actionBack, []string{"esc"}, "cancelar")

	reg(scopeNotice, actionDismiss, []string{"enter", "esc"}, "ok")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// ActionFor is Lookup reduced to the action name; empty when unbound.
func (r *KeyRegistry) ActionFor(keyName, scope string) Action {
	if b := r.Lookup(keyName, scope); b != nil {
		return b.Action
	}
	return ""
}

func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		return trimmed
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
