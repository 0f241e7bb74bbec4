// Package fixture generates test fixtures from recipes.
//
// # Overview
//
// Fixture organizes sample data around four concepts:
//
//  1. Recipes: immutable templates describing how to build one kind of fixture
//  2. Variants: recipes derived from another recipe with an extra override layer
//  3. Factories: recipes bound to a scope, producing fixtures on demand
//  4. Deferred values: auto-increments, lazy thunks and contextual values whose
//     value is only known once a draft has been layered
//
// # Basic Usage
//
//	type User struct {
//	    ID    int
//	    Name  string
//	    Email string
//	}
//
//	userRecipe := fixture.DefineRecipe[User](func(ctx *fixture.Context) (fixture.Tree, error) {
//	    return fixture.Tree{
//	        "id":   ctx.AutoIncrement(),
//	        "name": fixture.PickFrom("Alice", "Bob", "Charlie"),
//	        "email": ctx.ContextualValue(func(u *fixture.Instance) (any, error) {
//	            name, err := fixture.Lookup[string](u, "name")
//	            return strings.ToLower(name) + "@example.com", err
//	        }),
//	    }, nil
//	})
//
//	users := userRecipe.CreateFactory()
//	u, err := users.Create()                 // ID 1
//	batch, err := users.CreateN(3)           // IDs 2, 3, 4
//	random, err := users.CreateMany()        // configured length range
//
// # Layering
//
// Each create call builds a draft by merging, from lowest to highest
// precedence:
//
//	build output < recipe override < variants (in order) < call-time overrides
//
// Keyed structures merge recursively; sequences and deferred values are
// replaced as a whole.
//
//	admins := userRecipe.Variant(fixture.Tree{"role": "admin"})
//	u, err := users.WithVariants(admins).Create(func(ctx *fixture.Context) (fixture.Tree, error) {
//	    return fixture.Tree{"name": "root"}, nil
//	})
//
// # Nested Recipes
//
// Build functions embed other recipes through FromRecipe. The nested factory
// is cached per recipe in the parent's scope, so its counters continue across
// creations of the parent while staying independent from the parent's own
// counters and from any other factory:
//
//	userRecipe := fixture.DefineRecipe[User](func(ctx *fixture.Context) (fixture.Tree, error) {
//	    address, err := fixture.FromRecipe(ctx, addressRecipe).CreateTree()
//	    if err != nil {
//	        return nil, err
//	    }
//	    return fixture.Tree{"id": ctx.AutoIncrement(), "address": address}, nil
//	})
//
// Inside a build function, nested fixtures still hold their lazy values, so
// they are created as trees with CreateTree, CreateTreeN or CreateTreeMany.
// The typed Create family reports ErrDecode there; the tree is decoded into T
// once the outermost draft has resolved it.
//
// # Deferred Values
//
// Lazy values, including AutoIncrement, are resolved by the outermost draft
// of a create call, once for each place they appear in the tree. A lazy value
// read by a contextual value keeps the value that was read. A lazy value replaced by an override is never
// evaluated, so overriding an auto-increment does not consume a number.
//
// Contextual values are computed from the draft of the context that created
// them, after every layer has been merged. They are resolved at any depth and
// may return other contextual values, which are resolved in turn.
//
// # Configuration
//
//	fixture.Configure(fixture.ConfigUpdate{
//	    Array: fixture.ArrayUpdate{Min: lo.ToPtr(0), Max: lo.ToPtr(5)},
//	})
//
// Configuration is process-wide. Updates keep the fields they leave nil. LoadConfigFile and LoadConfig read the same settings through viper,
// with FIXTURE_ARRAY_MIN and FIXTURE_ARRAY_MAX environment overrides.
//
// # Extensions
//
// Extensions wrap every create operation of a factory chain:
//
//	users := userRecipe.CreateFactory(
//	    fixture.WithExtension(extensions.NewLoggingExtension(nil)),
//	)
//
// # Thread Safety
//
// Factories are not safe for concurrent use. Counters and drafting depth are
// owned by the scope of a factory chain; callers sharing a factory between
// goroutines must serialize create calls. Configuration and the package
// logger may be changed concurrently.
package fixture
