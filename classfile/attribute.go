package classfile

import "fmt"

// AttributeInfo is one attribute_info record. NameIndex names the attribute
// (resolved through the owning constant pool); Parsed holds one of the
// *XxxAttribute types below, or *UnknownAttribute for a name outside the
// sanctioned set.
type AttributeInfo struct {
	NameIndex uint16
	Parsed    any
}

func (a *AttributeInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(a.NameIndex)
}

// UnknownAttribute carries the raw bytes of an attribute whose name the
// decoder does not recognize — forward compatibility with future attribute
// kinds the decoder was not built to understand.
type UnknownAttribute struct {
	Bytes []byte
}

// decodeAttribute reads one attribute_info record: name index, u32 length,
// then length bytes dispatched by name. A sub-decoder that hits a short read
// or an out-of-taxonomy tag panics with the offending error; that panic is
// recovered here and turned back into a normal error, so callers of Decode
// never observe one (see cursor.go).
func decodeAttribute(c *cursor, cp ConstantPool) (attr AttributeInfo, err error) {
	nameIndex, err := c.ReadU16()
	if err != nil {
		return AttributeInfo{}, err
	}
	length, err := c.ReadU32()
	if err != nil {
		return AttributeInfo{}, err
	}
	body, err := c.ReadBytes(int(length))
	if err != nil {
		return AttributeInfo{}, err
	}

	name := cp.GetUtf8(nameIndex)
	parsed, err := parseAttributeBody(name, body, cp)
	if err != nil {
		return AttributeInfo{}, fmt.Errorf("attribute %q: %w", name, err)
	}
	return AttributeInfo{NameIndex: nameIndex, Parsed: parsed}, nil
}

// decodeAttributes reads a u16 count followed by that many attribute_info
// records — the shape shared by the class, field, method and Code/Record
// attribute sequences.
func decodeAttributes(c *cursor, cp ConstantPool) ([]AttributeInfo, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	attrs := make([]AttributeInfo, count)
	for i := range attrs {
		attrs[i], err = decodeAttribute(c, cp)
		if err != nil {
			return nil, err
		}
	}
	return attrs, nil
}

// parseAttributeBody dispatches on the attribute's name and decodes its
// already length-bounded body. Sub-decoders use the cursor's unchecked
// Must* family freely: body's length was already validated against the
// attribute's declared length by the caller, so any further short read can
// only mean a malformed body, which is exactly what the recover below turns
// back into an error.
func parseAttributeBody(name string, body []byte, cp ConstantPool) (parsed any, err error) {
	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%w: %v", ErrUnexpectedEOF, r)
			}
		}
	}()

	sub := newCursor(body)
	switch name {
	case "ConstantValue":
		return &ConstantValueAttribute{ValueIndex: sub.MustReadU16()}, nil
	case "Code":
		return parseCode(sub, cp), nil
	case "StackMapTable":
		return parseStackMapTable(sub), nil
	case "Exceptions":
		count := sub.MustReadU16()
		exc := make([]CPIndex[*ClassInfo], count)
		for i := range exc {
			exc[i] = CPIndex[*ClassInfo](sub.MustReadU16())
		}
		return &ExceptionsAttribute{Exceptions: exc}, nil
	case "InnerClasses":
		count := sub.MustReadU16()
		classes := make([]InnerClassEntry, count)
		for i := range classes {
			classes[i] = InnerClassEntry{
				InnerClass:            CPIndex[*ClassInfo](sub.MustReadU16()),
				OuterClass:            CPIndex[*ClassInfo](sub.MustReadU16()),
				InnerName:             CPIndex[*Utf8Info](sub.MustReadU16()),
				InnerClassAccessFlags: AccessFlags(sub.MustReadU16()),
			}
		}
		return &InnerClassesAttribute{Classes: classes}, nil
	case "EnclosingMethod":
		return &EnclosingMethodAttribute{
			Class:  CPIndex[*ClassInfo](sub.MustReadU16()),
			Method: CPIndex[*NameAndTypeInfo](sub.MustReadU16()),
		}, nil
	case "Synthetic":
		return &SyntheticAttribute{}, nil
	case "Deprecated":
		return &DeprecatedAttribute{}, nil
	case "Signature":
		return &SignatureAttribute{SignatureIndex: sub.MustReadU16()}, nil
	case "SourceFile":
		return &SourceFileAttribute{SourceFileIndex: sub.MustReadU16()}, nil
	case "SourceDebugExtension":
		return &SourceDebugExtensionAttribute{Bytes: body}, nil
	case "LineNumberTable":
		count := sub.MustReadU16()
		entries := make([]LineNumberEntry, count)
		for i := range entries {
			entries[i] = LineNumberEntry{StartPC: sub.MustReadU16(), LineNumber: sub.MustReadU16()}
		}
		return &LineNumberTableAttribute{Entries: entries}, nil
	case "LocalVariableTable":
		return &LocalVariableTableAttribute{Entries: parseLocalVariableEntries(sub)}, nil
	case "LocalVariableTypeTable":
		return &LocalVariableTypeTableAttribute{Entries: parseLocalVariableEntries(sub)}, nil
	case "RuntimeVisibleAnnotations":
		return &RuntimeVisibleAnnotationsAttribute{Annotations: parseAnnotations(sub)}, nil
	case "RuntimeInvisibleAnnotations":
		return &RuntimeInvisibleAnnotationsAttribute{Annotations: parseAnnotations(sub)}, nil
	case "RuntimeVisibleParameterAnnotations":
		return &RuntimeVisibleParameterAnnotationsAttribute{Parameters: parseParameterAnnotations(sub)}, nil
	case "RuntimeInvisibleParameterAnnotations":
		return &RuntimeInvisibleParameterAnnotationsAttribute{Parameters: parseParameterAnnotations(sub)}, nil
	case "RuntimeVisibleTypeAnnotations":
		return &RuntimeVisibleTypeAnnotationsAttribute{Annotations: parseTypeAnnotations(sub)}, nil
	case "RuntimeInvisibleTypeAnnotations":
		return &RuntimeInvisibleTypeAnnotationsAttribute{Annotations: parseTypeAnnotations(sub)}, nil
	case "AnnotationDefault":
		return &AnnotationDefaultAttribute{Value: parseElementValue(sub)}, nil
	case "BootstrapMethods":
		count := sub.MustReadU16()
		methods := make([]BootstrapMethodEntry, count)
		for i := range methods {
			ref := sub.MustReadU16()
			argCount := sub.MustReadU16()
			args := make([]uint16, argCount)
			for j := range args {
				args[j] = sub.MustReadU16()
			}
			methods[i] = BootstrapMethodEntry{MethodRef: ref, Arguments: args}
		}
		return &BootstrapMethodsAttribute{Methods: methods}, nil
	case "MethodParameters":
		count := sub.MustReadU8()
		params := make([]MethodParameterEntry, count)
		for i := range params {
			params[i] = MethodParameterEntry{
				NameIndex:   sub.MustReadU16(),
				AccessFlags: AccessFlags(sub.MustReadU16()),
			}
		}
		return &MethodParametersAttribute{Parameters: params}, nil
	case "NestHost":
		return &NestHostAttribute{HostClass: CPIndex[*ClassInfo](sub.MustReadU16())}, nil
	case "NestMembers":
		return &NestMembersAttribute{Classes: parseClassList(sub)}, nil
	case "PermittedSubclasses":
		return &PermittedSubclassesAttribute{Classes: parseClassList(sub)}, nil
	case "ModuleMainClass":
		return &ModuleMainClassAttribute{MainClass: CPIndex[*ClassInfo](sub.MustReadU16())}, nil
	case "ModulePackages":
		count := sub.MustReadU16()
		pkgs := make([]CPIndex[*PackageInfo], count)
		for i := range pkgs {
			pkgs[i] = CPIndex[*PackageInfo](sub.MustReadU16())
		}
		return &ModulePackagesAttribute{Packages: pkgs}, nil
	case "Module":
		return parseModule(sub), nil
	case "Record":
		return parseRecord(sub, cp), nil
	default:
		return &UnknownAttribute{Bytes: body}, nil
	}
}

func parseClassList(c *cursor) []CPIndex[*ClassInfo] {
	count := c.MustReadU16()
	classes := make([]CPIndex[*ClassInfo], count)
	for i := range classes {
		classes[i] = CPIndex[*ClassInfo](c.MustReadU16())
	}
	return classes
}

func parseLocalVariableEntries(c *cursor) []LocalVariableEntry {
	count := c.MustReadU16()
	entries := make([]LocalVariableEntry, count)
	for i := range entries {
		entries[i] = LocalVariableEntry{
			StartPC:         c.MustReadU16(),
			Length:          c.MustReadU16(),
			NameIndex:       c.MustReadU16(),
			DescriptorIndex: c.MustReadU16(),
			Index:           c.MustReadU16(),
		}
	}
	return entries
}
