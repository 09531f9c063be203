package schema

// Annotations is the optional COCO-like detection-annotations document
// described by spec.md §6's third paragraph: a decode target for overlay
// consumers only. Nothing in core or editor reads this type — detection
// annotations never enter the graph model.
type Annotations struct {
	Images     []AnnotationImage    `json:"images"`
	Categories []AnnotationCategory `json:"categories"`
	Annotations []Annotation        `json:"annotations"`
}

// AnnotationImage is one source image entry in a COCO-like document.
type AnnotationImage struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// AnnotationCategory is one class definition in a COCO-like document.
type AnnotationCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Annotation is one detection: an axis-aligned bbox [x, y, w, h] plus an
// optional polygon segmentation, for overlay rendering only.
type Annotation struct {
	ImageID      int         `json:"image_id"`
	CategoryID   int         `json:"category_id"`
	BBox         [4]float64  `json:"bbox"`
	Segmentation [][]float64 `json:"segmentation,omitempty"`
	Score        float64     `json:"score,omitempty"`
}
