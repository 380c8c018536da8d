package store

const (
	EventExpenseAdded   = "expense.added"
	EventExpenseDeleted = "expense.deleted"
	EventProjectAdded   = "project.added"
	EventCategoryAdded  = "category.added"
	EventIncomeAdded    = "income.added"
	EventSessionLogin   = "session.login"
	EventSessionLogout  = "session.logout"
)

// Event describes a change to the session or the ledger.
type Event struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

type Notifier interface {
	Notify(e Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(e Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

type noopNotifier struct{}

func (noopNotifier) Notify(Event) {}
