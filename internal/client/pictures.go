package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// PicturesClient implements bcapi.PicturesClient. A picture is a media
// sub-resource of customers, items and vendors; parentType names the
// collection the owning entity lives in.
type PicturesClient struct {
	d dispatcher
}

// NewPicturesClient creates a new pictures client.
func NewPicturesClient(c *Client) *PicturesClient {
	return &PicturesClient{
		d: dispatcher{client: c, mode: bcapi.ModeCompany},
	}
}

func (c *PicturesClient) picturePath(parentType, parentID string) string {
	return "/" + parentType + "(" + parentID + ")/picture"
}

// Get implements bcapi.PicturesClient.Get.
func (c *PicturesClient) Get(ctx context.Context, parentType, parentID string) (*bcapi.Picture, error) {
	resp, err := c.d.get(ctx, c.picturePath(parentType, parentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting picture: %w", err)
	}

	var picture bcapi.Picture

	err = json.Unmarshal(resp.Body, &picture)
	if err != nil {
		return nil, fmt.Errorf("parsing picture response: %w", err)
	}

	return &picture, nil
}

// Download implements bcapi.PicturesClient.Download. The content stream
// lives one segment below the metadata.
func (c *PicturesClient) Download(ctx context.Context, parentType, parentID string) ([]byte, error) {
	resp, err := c.d.get(ctx, c.picturePath(parentType, parentID)+"/pictureContent", nil)
	if err != nil {
		return nil, fmt.Errorf("downloading picture: %w", err)
	}

	return resp.Body, nil
}

// Upload implements bcapi.PicturesClient.Upload. The body is streamed from
// filePath as raw bytes rather than JSON.
func (c *PicturesClient) Upload(ctx context.Context, parentType, parentID, filePath string) error {
	_, err := c.d.upload(ctx, c.picturePath(parentType, parentID)+"/pictureContent", filePath)
	if err != nil {
		return fmt.Errorf("uploading picture: %w", err)
	}

	return nil
}

// Delete implements bcapi.PicturesClient.Delete.
func (c *PicturesClient) Delete(ctx context.Context, parentType, parentID string) error {
	_, err := c.d.delete(ctx, c.picturePath(parentType, parentID))
	if err != nil {
		return fmt.Errorf("deleting picture: %w", err)
	}

	return nil
}
