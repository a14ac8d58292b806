/*
Package ast parses prenex token streams into expression trees.

The tree is a closed sum over six node types, one per prenex keyword plus
the atom leaf. Arity is fixed by the node type, which is what drives the
parser: it pops one token, resolves its arity (0 for atoms and the reserved
atoms eps/void, 1 for STAR/PLUS/MAYBE, 2 for UNION/CONCAT) and recursively
parses that many children. A stream that runs dry before all arities are
satisfied, or that leaves tokens behind after the root is complete, is
malformed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/
package ast
