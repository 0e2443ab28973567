package lang

// Prelude is loaded by the `run` command before any user file (spec
// §6: "load the prelude, then each file in order"). It defines the
// handful of standard combinators the testable properties and example
// scenarios reference (Church arithmetic, booleans, pairs) so a user
// program can immediately call plus, mult, and friends without
// re-deriving them.
const Prelude = `
id = \x. x;
const = \x y. x;
succ = \n f x. f (n f x);
plus = \m n f x. (m f) ((n f) x);
mult = \m n f. m (n f);
true = \x y. x;
false = \x y. y;
not = \p. p false true;
and = \p q. p q false;
or = \p q. p true q;
pair = \x y f. f x y;
fst = \p. p true;
snd = \p. p false;
`
