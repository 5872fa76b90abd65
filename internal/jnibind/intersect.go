package jnibind

// methodKey identifies a method by the tuple spec §4.8 step 2 intersects
// on: name, parameter types, return type, and static-ness.
type methodKey struct {
	name       string
	paramsKey  string
	returnType string
	static     bool
}

func keyOf(m Method) methodKey {
	params := ""
	for _, p := range m.ParamTypes {
		params += p + ","
	}
	return methodKey{name: m.Name, paramsKey: params, returnType: m.ReturnType, static: m.Static}
}

type fieldKey struct {
	name   string
	typ    string
	static bool
}

func fieldKeyOf(f Field) fieldKey {
	return fieldKey{name: f.Name, typ: f.Type, static: f.Static}
}

// Intersect keeps only members present in both bytecode and stubs
// (matched by (name, param_types, return_type, static_flag) or
// (name, type, static_flag) for fields), preferring the stubs'
// documentation and deprecation metadata, per spec §4.8 step 2. Used by
// the android input mode to combine a compiled android.jar with its
// matching source-stubs jar.
func Intersect(bytecode, stubs ClassInfo) ClassInfo {
	out := stubs
	out.Constructors = intersectMethods(bytecode.Constructors, stubs.Constructors)
	out.Methods = intersectMethods(bytecode.Methods, stubs.Methods)
	out.StaticMethods = intersectMethods(bytecode.StaticMethods, stubs.StaticMethods)
	out.NativeMethods = intersectMethods(bytecode.NativeMethods, stubs.NativeMethods)
	out.Fields = intersectFields(bytecode.Fields, stubs.Fields)
	out.StaticFields = intersectFields(bytecode.StaticFields, stubs.StaticFields)
	return out
}

func intersectMethods(bytecode, stubs []Method) []Method {
	bySig := make(map[methodKey]bool, len(bytecode))
	for _, m := range bytecode {
		bySig[keyOf(m)] = true
	}
	var out []Method
	for _, m := range stubs {
		if bySig[keyOf(m)] {
			out = append(out, m) // stubs' docs/deprecation win
		}
	}
	return out
}

func intersectFields(bytecode, stubs []Field) []Field {
	bySig := make(map[fieldKey]bool, len(bytecode))
	for _, f := range bytecode {
		bySig[fieldKeyOf(f)] = true
	}
	var out []Field
	for _, f := range stubs {
		if bySig[fieldKeyOf(f)] {
			out = append(out, f)
		}
	}
	return out
}
