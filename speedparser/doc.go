// Package speedparser parses the free-form text of one speed cell into
// provisional tag pairs. The accepted grammar, clause by clause (clauses
// separated by ";"):
//
//	50              -> maxspeed=50
//	80 mph          -> maxspeed=80 mph
//	none            -> maxspeed=none
//	walk            -> maxspeed=walk
//	trucks 30       -> maxspeed:trucks=30
//	urban 50 mph    -> maxspeed:urban=50 mph
//	no access       -> access=no
//
// Anything else is an error; callers are expected to convert parse errors
// into warnings and carry on.
package speedparser
