package indexes

import (
	c "pedigree/api/models/constants"
)

// Variant mirrors the per-sample documents found in the `variants-*` indices
// written by the Gohan ingestion pipeline. Only the fields consumed by the
// inheritance analysis are declared.
type Variant struct {
	Chrom  string   `json:"chrom"`
	Pos    int      `json:"pos"`
	Id     string   `json:"id"`
	Ref    []string `json:"ref"`
	Alt    []string `json:"alt"`
	Format []string `json:"format"`
	Qual   int      `json:"qual"`
	Filter string   `json:"filter"`
	Info   []Info   `json:"info"`

	Sample Sample `json:"sample"`

	FileId      string `json:"fileId"`
	Dataset     string `json:"dataset"`
	AssemblyId  string `json:"assemblyId"`
	CreatedTime string `json:"createdTime"`
}

type Info struct {
	Id    string `json:"id"`
	Value string `json:"value"`
}

type Sample struct {
	Id        string    `json:"id"`
	Variation Variation `json:"variation"`
}

type Variation struct {
	Genotype Genotype   `json:"genotype"`
	Alleles  AllelePair `json:"alleles"`
}

type AllelePair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type Genotype struct {
	Phased   bool       `json:"phased"`
	Zygosity c.Zygosity `json:"zygosity"`
}

type Gene struct {
	Name       string `json:"name"`
	Chrom      string `json:"chrom"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	AssemblyId string `json:"assemblyId"`
}

func (g Gene) Overlaps(pos int) bool {
	return pos >= g.Start && pos <= g.End
}
