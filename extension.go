package fixture

// Extension provides hooks around fixture creation
type Extension interface {
	// Name returns the extension's name
	Name() string

	// Order determines extension execution order (lower = earlier)
	Order() int

	// Init is called when the extension is registered to a scope
	Init(scope *Scope) error

	// Wrap intercepts create operations
	Wrap(next func() (any, error), op *Operation) (any, error)

	// OnError is notified when a create operation fails
	OnError(err error, op *Operation)
}

// BaseExtension provides default implementations for Extension methods
type BaseExtension struct {
	name string
}

// NewBaseExtension creates a new base extension with the given name
func NewBaseExtension(name string) BaseExtension {
	return BaseExtension{name: name}
}

func (e *BaseExtension) Name() string {
	return e.name
}

func (e *BaseExtension) Order() int {
	return 100
}

func (e *BaseExtension) Init(scope *Scope) error {
	return nil
}

func (e *BaseExtension) Wrap(next func() (any, error), op *Operation) (any, error) {
	return next()
}

func (e *BaseExtension) OnError(err error, op *Operation) {
}

// Operation describes what operation is happening
type Operation struct {
	Kind   OperationKind
	Recipe AnyRecipe
	Scope  *Scope
	// Nested is true when the operation runs inside the build of another draft.
	Nested bool
	// Variants is the number of variants applied.
	Variants int
	// Count is the batch size of an OpCreateMany operation.
	Count int
}

// OperationKind represents the type of operation
type OperationKind string

const (
	// OpCreate indicates the creation of one fixture
	OpCreate OperationKind = "create"
	// OpCreateMany indicates a batch creation
	OpCreateMany OperationKind = "createMany"
)
