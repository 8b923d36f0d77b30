/*
Package value implements the runtime values of stackscript: a closed set of
variants, together with the symbols programs are made of.

Values are one of Bool, Int, Float, String, *List, Tuple and Block. Lists are
shared by identity: two bindings of the same list see the same elements, and
lists compare equal only if they are the same list. Tuples are immutable and
compare element-wise. Blocks are immutable sequences of symbols. They do not
capture an environment; free names in a block are resolved when the block runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value
