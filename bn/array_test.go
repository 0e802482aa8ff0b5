package bn

import "testing"

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if a.DType() != Float64 {
		t.Errorf("DType: got %s, want float64", a.DType())
	}
	if a.NDim() != 2 {
		t.Errorf("NDim: got %d, want 2", a.NDim())
	}
	if got := a.Shape(); got[0] != 2 || got[1] != 3 {
		t.Errorf("Shape: got %v, want [2 3]", got)
	}
	if a.Len() != 6 {
		t.Errorf("Len: got %d, want 6", a.Len())
	}
}

func TestFromSliceBorrows(t *testing.T) {
	data := []int32{1, 2, 3}
	a, err := FromSlice(data, 3)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	Data[int32](a)[1] = 42
	if data[1] != 42 {
		t.Error("FromSlice copied the slice; mutations must alias the caller's memory")
	}
}

func TestFromSliceShapeMismatch(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, 2, 3); err == nil {
		t.Error("shape product 6 with 3 elements: want error")
	}
	if _, err := FromSlice([]float64{1, 2, 3}); err == nil {
		t.Error("empty shape: want error")
	}
	if _, err := FromSlice([]float64{}, -1); err == nil {
		t.Error("negative dimension: want error")
	}
}

func TestZeros(t *testing.T) {
	a, err := Zeros[int8](4, 2)
	if err != nil {
		t.Fatalf("Zeros: %v", err)
	}
	if a.DType() != Int8 || a.Len() != 8 {
		t.Errorf("Zeros: dtype %s len %d, want int8 len 8", a.DType(), a.Len())
	}
	for i, v := range Data[int8](a) {
		if v != 0 {
			t.Errorf("element %d: got %v, want 0", i, v)
		}
	}
}

func TestDataTypeMismatch(t *testing.T) {
	a, err := Zeros[float32](3)
	if err != nil {
		t.Fatalf("Zeros: %v", err)
	}
	if got := Data[float64](a); got != nil {
		t.Errorf("Data[float64] on float32 array: got %v, want nil", got)
	}
	if got := Data[float32](nil); got != nil {
		t.Errorf("Data on nil array: got %v, want nil", got)
	}
}

func TestShapeIsACopy(t *testing.T) {
	a, err := Zeros[int64](2, 2)
	if err != nil {
		t.Fatalf("Zeros: %v", err)
	}
	a.Shape()[0] = 99
	if a.Shape()[0] != 2 {
		t.Error("Shape must return a copy, not the internal slice")
	}
}

func TestDTypeStringAndSize(t *testing.T) {
	tests := []struct {
		dtype DType
		name  string
		size  int
	}{
		{Int8, "int8", 1},
		{Int32, "int32", 4},
		{Int64, "int64", 8},
		{Float32, "float32", 4},
		{Float64, "float64", 8},
	}
	for _, tt := range tests {
		if tt.dtype.String() != tt.name {
			t.Errorf("String: got %s, want %s", tt.dtype, tt.name)
		}
		if tt.dtype.Size() != tt.size {
			t.Errorf("%s Size: got %d, want %d", tt.name, tt.dtype.Size(), tt.size)
		}
	}
}
