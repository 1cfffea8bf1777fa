package mips

// Decoder decodes instruction words against a catalog.
type Decoder struct {
	Catalog *Catalog // Operations to recognize. Standard if nil.
}

// NewDecoder creates a decoder for a catalog, or for Standard if cat is nil.
func NewDecoder(cat *Catalog) (dec *Decoder) {
	if cat == nil {
		cat = Standard
	}

	dec = &Decoder{
		Catalog: cat,
	}

	return
}

func (dec *Decoder) catalog() *Catalog {
	if dec == nil || dec.Catalog == nil {
		return Standard
	}
	return dec.Catalog
}

// Decode decodes a single word. A word that names no known operation
// returns an ErrUnrecognized carrying the codes that were looked up.
func (dec *Decoder) Decode(w Word) (inst Instruction, err error) {
	primary := w.Primary()
	layout := Classify(primary)
	key := KeyOf(w, layout)

	op, ok := dec.catalog().Lookup(layout, key)
	if !ok {
		err = ErrUnrecognized{
			Word:      w,
			Layout:    layout,
			Primary:   key.Primary,
			Secondary: key.Secondary,
		}
		return
	}

	inst = Instruction{
		Word: w,
		Op:   op,
	}

	switch layout {
	case LAYOUT_REGISTER:
		inst.Rs, inst.Rt, inst.Rd, inst.Shamt, inst.Funct = w.RegisterDecode()
	case LAYOUT_IMMEDIATE:
		inst.Rs, inst.Rt, inst.Immediate = w.ImmediateDecode()
	case LAYOUT_JUMP:
		inst.Target = w.JumpDecode()
	}

	return
}

// Decode decodes a single word against the Standard catalog.
func Decode(w Word) (Instruction, error) {
	return (*Decoder)(nil).Decode(w)
}
