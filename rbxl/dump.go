package rbxl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/robloxfmt/rbxbin"
)

// Dump writes a readable text representation of a decoded File to w. It is a
// diagnostic aid, not a serialisation format: nothing reads Dump's output
// back.
//
// Grounded on rbxfile's Decoder.Dump (rbxl/dump.go): same indentation and
// byte-hexdump conventions, adapted from a Dump that walks raw chunks
// (chunkInstance, chunkProperty, chunkParent, ...) to one that walks the
// materialised File (Instances addressed by referent, properties already
// scattered onto them, Referent values already resolved to Object values).
func Dump(w io.Writer, f *rbxbin.File) error {
	if f == nil {
		return fmt.Errorf("dump: nil file")
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Classes: %d", len(f.Classes))
	fmt.Fprintf(bw, "\nInstances: %d", len(f.Instances))
	if len(f.Metadata) > 0 {
		fmt.Fprint(bw, "\nMetadata: {")
		for k, v := range f.Metadata {
			dumpNewline(bw, 1)
			bw.WriteString("Key: ")
			dumpString(bw, 1, k)
			dumpNewline(bw, 1)
			bw.WriteString("Value: ")
			dumpString(bw, 1, v)
		}
		fmt.Fprint(bw, "\n}")
	}

	fmt.Fprint(bw, "\nClasses: {")
	for _, class := range f.Classes {
		dumpClass(bw, 1, class)
	}
	fmt.Fprint(bw, "\n}")

	fmt.Fprint(bw, "\nInstances: {")
	for _, inst := range f.Instances {
		dumpInstance(bw, 1, inst)
	}
	fmt.Fprint(bw, "\n}")

	return bw.Flush()
}

func dumpClass(w *bufio.Writer, indent int, class *rbxbin.ClassDef) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "#%d: ", class.TypeID)
	dumpString(w, indent, class.Name)
	w.WriteString(" {")
	dumpNewline(w, indent+1)
	fmt.Fprintf(w, "Instances: (count:%d) {", len(class.Referents))
	for i, r := range class.Referents {
		dumpNewline(w, indent+2)
		fmt.Fprintf(w, "%d: %s", i, r)
		if class.ServiceMarkers != nil && class.ServiceMarkers[i] != 0 {
			fmt.Fprintf(w, " (service %d)", class.ServiceMarkers[i])
		}
	}
	dumpNewline(w, indent+1)
	w.WriteByte('}')
	dumpNewline(w, indent+1)
	fmt.Fprintf(w, "Properties: (count:%d) {", len(class.Properties))
	for _, prop := range class.Properties {
		dumpNewline(w, indent+2)
		dumpString(w, indent+2, prop.Name)
		fmt.Fprintf(w, " (%s)", prop.DeclaredKind)
	}
	dumpNewline(w, indent+1)
	w.WriteByte('}')
	dumpNewline(w, indent)
	w.WriteByte('}')
}

func dumpInstance(w *bufio.Writer, indent int, inst *rbxbin.Instance) {
	if inst == nil {
		dumpNewline(w, indent)
		w.WriteString("<nil>")
		return
	}
	dumpNewline(w, indent)
	fmt.Fprintf(w, "%s: ", inst.Referent)
	dumpString(w, indent, inst.Class.Name)
	w.WriteString(" {")
	for _, p := range inst.Properties {
		dumpNewline(w, indent+1)
		dumpString(w, indent+1, p.Def.Name)
		w.WriteString(": ")
		w.WriteString(p.Value.String())
	}
	dumpNewline(w, indent)
	w.WriteByte('}')
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpString(w *bufio.Writer, indent int, s string) {
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			dumpBytes(w, indent, []byte(s))
			return
		}
	}
	fmt.Fprintf(w, "(len:%d) ", len(s))
	w.WriteString(strconv.Quote(s))
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
