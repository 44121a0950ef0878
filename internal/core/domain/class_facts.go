package domain

// ClassFacts is what the bytecode visitor extracted from one compiled class.
// It is produced independently per class file; nothing is shared between two ClassFacts.
type ClassFacts struct {
	// Name is the class the facts describe.
	Name ClassName
	// AccessibleDependencies are types referenced from the class's visible surface
	// (supertypes, field and method signatures).
	AccessibleDependencies []ClassName
	// PrivateDependencies are types referenced only from method bodies and private members.
	PrivateDependencies []ClassName
	// Constants are the origin hashes of the compile-time constants the class inlined.
	Constants []ConstantOriginHash
	// ConstantRefs are the inlined constants as written by the compiler, before hashing.
	// They feed the constant origin index when no separate constant usage report exists.
	ConstantRefs []ConstantRef
	// DependencyToAllReason is set when a change to this class cannot be analysed precisely.
	DependencyToAllReason string
}
